package sheet

// Entry is one parsed signup row from the published sheet.
type Entry struct {
	Name      string
	Tag       string
	Roles     string
	Timestamp string
}
