package diagfmt

import (
	"fmt"
	"strings"

	"tscore/internal/diag"
	"tscore/internal/source"
)

type fixEditPreview struct {
	before []string
	after  []string
}

// buildFixEditPreview renders the lines an edit touches before and after
// applying it.
func buildFixEditPreview(sm *source.SourceMap, edit diag.FixEdit) (fixEditPreview, error) {
	file := lookupFile(sm, edit.Span)
	if file == nil {
		return fixEditPreview{}, fmt.Errorf("edit span %v is not inside a single file", edit.Span)
	}

	startLine := file.LineCol(edit.Span.Lo).Line
	endLine := max(file.LineCol(edit.Span.Hi).Line, startLine)

	blockStart := file.Offset(file.LineStart(startLine))
	blockEnd := file.Offset(file.LineStart(endLine)) + len(file.LineText(endLine))
	lo, hi := file.Offset(edit.Span.Lo), file.Offset(edit.Span.Hi)
	if lo < blockStart || hi > blockEnd {
		// The edit replaces a line terminator; widen to the end of the next line.
		blockEnd = max(blockEnd, hi)
	}

	original := file.Text[blockStart:blockEnd]
	var after strings.Builder
	after.WriteString(file.Text[blockStart:lo])
	after.WriteString(edit.NewText)
	after.WriteString(file.Text[hi:blockEnd])

	return fixEditPreview{
		before: splitPreviewLines(original),
		after:  splitPreviewLines(after.String()),
	}, nil
}

func splitPreviewLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}
