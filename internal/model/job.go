package model

import "time"

// Job records one compress or decompress call.
type Job struct {
	ID         string    `json:"id"`
	Direction  string    `json:"direction"`
	InputSize  int       `json:"input_size"`
	OutputSize int       `json:"output_size"`
	Ratio      float64   `json:"ratio"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	DirectionCompress   = "compress"
	DirectionDecompress = "decompress"
)
