package types

// CMYK holds a subtractive color breakdown, each channel a percentage in [0,100]
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// RankedColor is one entry of the ranked palette produced by clustering
type RankedColor struct {
	Hex     string  `json:"hex"`
	R       uint8   `json:"r"`
	G       uint8   `json:"g"`
	B       uint8   `json:"b"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
	CMYK    CMYK    `json:"cmyk"`
}

// Report contains the complete result of one analysis run.
// Width and Height are the dimensions of the scaled buffer the analysis
// ran on; cluster data and channel previews refer to those dimensions.
type Report struct {
	Clusters     []RankedColor `json:"clusters"`
	Overall      CMYK          `json:"overall"`
	TotalSamples int           `json:"total_samples"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
}

// Top returns a copy of the report truncated to at most n clusters.
// The full ranked list is always computed; truncation is presentation-only.
func (r *Report) Top(n int) *Report {
	truncated := *r
	if n >= 0 && n < len(r.Clusters) {
		truncated.Clusters = r.Clusters[:n]
	}
	return &truncated
}
