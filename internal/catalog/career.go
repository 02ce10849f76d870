package catalog

// Career is one entry in the static career catalog.
type Career struct {
	ID       string `yaml:"id"`
	Label    Label  `yaml:"label"`
	Category Label  `yaml:"category"`
}
