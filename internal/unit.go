package internal

import (
	"errors"
	"fmt"
	"strings"

	slices "golang.org/x/exp/slices"

	"github.com/Eyevinn/mpeg2-tools/internal/mpeg2"
)

var ErrUnknownUnitType = errors.New("unknown unit type")

// UnitInfo is the unitlister record for one unit.
type UnitInfo struct {
	Index                 int         `json:"index"`
	Start                 int         `json:"start"`
	End                   int         `json:"end"`
	PrefixLen             int         `json:"prefixLen"`
	Type                  string      `json:"type"`
	StartCode             string      `json:"startCode"`
	SliceID               *int        `json:"sliceId,omitempty"`
	SystemStartCodeOffset *int        `json:"systemStartCodeOffset,omitempty"`
	Summary               string      `json:"summary,omitempty"`
	PTS                   *int64      `json:"pts,omitempty"`
	DTS                   *int64      `json:"dts,omitempty"`
	Error                 string      `json:"error,omitempty"`
	Details               any         `json:"details,omitempty"`
	Tree                  *mpeg2.Node `json:"tree,omitempty"`
}

// NewUnitInfo builds the record for u. mark is the PES packet u is the first
// unit of, if any.
func NewUnitInfo(u *mpeg2.Unit, mark *PESMark, details bool) UnitInfo {
	ui := UnitInfo{
		Index:                 u.Index,
		Start:                 u.Start,
		End:                   u.End,
		PrefixLen:             u.PrefixLen,
		Type:                  u.Header.Type.String(),
		StartCode:             fmt.Sprintf("0x%02x", u.Header.StartCodeValue),
		SliceID:               u.Header.SliceID,
		SystemStartCodeOffset: u.Header.SystemStartCodeOffset,
		Summary:               u.Summary,
		Tree:                  u.Tree,
	}
	if u.Err != nil {
		ui.Error = u.Err.Error()
	}
	if details && u.Payload != nil {
		ui.Details = u.Payload
	}
	if mark != nil {
		ui.PTS, ui.DTS = mark.PTS, mark.DTS
	}
	return ui
}

// TypeFilter selects units by type name (e.g. PICTURE) or decoder summary (e.g. SeqExt).
// An empty filter selects all units.
type TypeFilter []string

func ParseTypeFilter(s string) (TypeFilter, error) {
	var f TypeFilter
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := mpeg2.ParseUnitType(name); !ok && !slices.Contains(mpeg2.Summaries(), name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUnitType, name)
		}
		f = append(f, name)
	}
	return f, nil
}

func (f TypeFilter) Match(u *mpeg2.Unit) bool {
	if len(f) == 0 {
		return true
	}
	return slices.Contains(f, u.Header.Type.String()) || (u.Summary != "" && slices.Contains(f, u.Summary))
}
