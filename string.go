package bon

// String is UTF-8 text.
type String string

func (String) bonValue() {}

func (s String) String() string {
	return formatString(string(s))
}
