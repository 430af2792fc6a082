package registry

// typeFolder maps one recognized top-level Assets folder to its type tag.
type typeFolder struct {
	Folder string
	Type   string
}

// moduleTypeFolders is the closed set of recognized folders. Declaration
// order is discovery order: scans visit these folders in this sequence, so
// the slice must stay ordered (not a map).
var moduleTypeFolders = []typeFolder{
	{"_Core", "core"},
	{"_Managers", "manager"},
	{"_Shared", "shared"},
	{"Features", "feature"},
	{"Levels", "level"},
	{"ThirdParty", "thirdparty"},
	{"_Extensions", "extension"},
}

// ClassifyFolder returns the type tag for a top-level Assets folder name.
// Matching is exact and case-sensitive; ok is false for anything outside the
// recognized set.
func ClassifyFolder(name string) (tag string, ok bool) {
	for _, tf := range moduleTypeFolders {
		if tf.Folder == name {
			return tf.Type, true
		}
	}
	return "", false
}

// TypeTags returns all type tags in declaration order.
func TypeTags() []string {
	tags := make([]string, 0, len(moduleTypeFolders))
	for _, tf := range moduleTypeFolders {
		tags = append(tags, tf.Type)
	}
	return tags
}

// IsValidType reports whether tag is one of the recognized type tags.
func IsValidType(tag string) bool {
	for _, tf := range moduleTypeFolders {
		if tf.Type == tag {
			return true
		}
	}
	return false
}
