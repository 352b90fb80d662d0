package cli

import (
	"codeberg.org/snonux/totaltranslate/internal/provider"
	"codeberg.org/snonux/totaltranslate/internal/segment"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	From      string
	To        string
	Providers []string
	ChunkSize int
	Verbose   bool

	// Input modes
	BatchFile  string
	ImageFile  string
	Detect     bool
	OCRCleanup bool

	// Maintenance
	ListModels     bool
	ShowStats      bool
	ShowHistory    int
	ArchiveHistory bool
	NoHistory      bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		From:      "auto",
		To:        "en",
		Providers: append([]string(nil), provider.DefaultOrder...),
		ChunkSize: segment.DefaultMaxChunkSize,
	}
}
