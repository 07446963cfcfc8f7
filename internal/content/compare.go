package content

import (
	"fmt"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/parser"
)

// ChangeKind classifies a positional block difference.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// Change describes the difference at one block position.
type Change struct {
	Index   int        `json:"index"`
	Kind    ChangeKind `json:"kind"`
	OldType block.Type `json:"oldType,omitempty"`
	NewType block.Type `json:"newType,omitempty"`
}

// Comparison is the result of CompareContent.
type Comparison struct {
	Changed bool     `json:"changed"`
	Summary string   `json:"summary"`
	Changes []Change `json:"changes,omitempty"`
}

// CompareContent reports whether two versions of content differ
// structurally. Blocks are compared position by position.
func CompareContent(oldContent, newContent string) Comparison {
	oldBlocks := parser.ParseStoredContent(oldContent)
	newBlocks := parser.ParseStoredContent(newContent)

	for _, blocks := range [][]block.Block{oldBlocks, newBlocks} {
		if _, err := block.Marshal(blocks); err != nil {
			return Comparison{Changed: true, Summary: "Unable to compare"}
		}
	}

	// Blocks hold only strings, so field equality is equality of the
	// serialized arrays.
	result := Comparison{
		Changed: !block.Equal(oldBlocks, newBlocks),
		Summary: fmt.Sprintf("%d → %d blocks", len(oldBlocks), len(newBlocks)),
	}
	if result.Changed {
		result.Changes = diffBlocks(oldBlocks, newBlocks)
	}
	return result
}

func diffBlocks(oldBlocks, newBlocks []block.Block) []Change {
	var changes []Change
	for i := 0; i < max(len(oldBlocks), len(newBlocks)); i++ {
		switch {
		case i >= len(oldBlocks):
			changes = append(changes, Change{Index: i, Kind: ChangeAdded, NewType: newBlocks[i].Type})
		case i >= len(newBlocks):
			changes = append(changes, Change{Index: i, Kind: ChangeRemoved, OldType: oldBlocks[i].Type})
		case oldBlocks[i] != newBlocks[i]:
			changes = append(changes, Change{
				Index:   i,
				Kind:    ChangeModified,
				OldType: oldBlocks[i].Type,
				NewType: newBlocks[i].Type,
			})
		}
	}
	return changes
}
