package config

// Template placeholder tokens.
const (
	PackageToken = "%package%"
	NameToken    = "%name%"
	CursorToken  = "%cursor%"
)

// Built-in construct kinds, in menu order.
const (
	KindClass         = "class"
	KindInterface     = "interface"
	KindEnum          = "enum"
	KindRecord        = "record"
	KindAbstractClass = "abstract_class"
)

// BuiltinKinds lists the construct kinds that ship with default templates.
var BuiltinKinds = []string{KindClass, KindInterface, KindEnum, KindRecord, KindAbstractClass}

// Operations that may carry a command alias under keymaps.
const OpNew = "new"

var defaultTemplates = map[string]string{
	KindClass:         "%package%public class %name% {\n\n    %cursor%\n}\n",
	KindInterface:     "%package%public interface %name% {\n\n    %cursor%\n}\n",
	KindEnum:          "%package%public enum %name% {\n\n    %cursor%\n}\n",
	KindRecord:        "%package%public record %name%(%cursor%) {\n\n}\n",
	KindAbstractClass: "%package%public abstract class %name% {\n\n    %cursor%\n}\n",
}

var defaultKeymaps = map[string]string{
	OpNew:             "n",
	KindClass:         "c",
	KindInterface:     "i",
	KindEnum:          "e",
	KindRecord:        "r",
	KindAbstractClass: "a",
}

// DefaultSourceRoots are the source-root patterns tried in order when no
// configuration overrides them.
var DefaultSourceRoots = []string{"src/main/java", "src/test/java", "src"}

// defaultSettings returns every leaf key with its default value. Keys use
// viper's dotted form.
func defaultSettings() map[string]any {
	s := map[string]any{
		"options.auto_open":      true,
		"options.editor":         "",
		"options.file_extension": "java",
		"options.java_release":   "21",
		"options.source_roots":   append([]string(nil), DefaultSourceRoots...),
		"options.notify.level":   "info",
		"options.notify.timeout": 3000,
	}
	for kind, tmpl := range defaultTemplates {
		s["templates."+kind] = tmpl
	}
	for op, key := range defaultKeymaps {
		s["keymaps."+op] = key
	}
	return s
}
