package entity

// Report is a rendered document produced by the ERP report engine.
type Report struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}
