package entity

// FormField is one hidden input of the redirect form.
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SignedForm is the output of building a payment: the resolved gateway URL and
// the ordered hidden fields the caller renders into a POST form. Immutable
// once produced.
type SignedForm struct {
	URL    string      `json:"url"`
	Fields []FormField `json:"fields"`
}

// Get returns the value of a named field.
func (f *SignedForm) Get(name string) (string, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}
