package dto

type AppendInput struct {
	GroupCode       string
	Arrived         string
	Start           string
	BreakStart      string
	BreakEnd        string
	LectureEnd      string
	BreakDuration   string
	LectureDuration string
	Notes           string
}

type RecordOutput struct {
	GroupCode       string
	Arrived         string
	Start           string
	BreakStart      string
	BreakEnd        string
	LectureEnd      string
	BreakDuration   string
	LectureDuration string
	Notes           string
}

type ExportInput struct {
	// Path overrides the configured export destination when set.
	Path string
}

type ExportOutput struct {
	Path    string
	Records int
	Bytes   int64
}
