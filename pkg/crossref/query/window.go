package query

import (
	"net/url"
	"strconv"
)

type windowKind int

const (
	windowRows windowKind = iota + 1
	windowOffset
	windowRowsOffset
	windowSample
)

// ResultWindow controls how many items a list request returns and where it starts.
// The zero value is not a valid window; use Rows, Offset, RowsOffset or Sample.
type ResultWindow struct {
	kind   windowKind
	rows   int
	offset int
	sample int
}

// Rows limits the number of returned items.
func Rows(n int) ResultWindow {
	return ResultWindow{kind: windowRows, rows: n}
}

// Offset skips the first n items.
func Offset(n int) ResultWindow {
	return ResultWindow{kind: windowOffset, offset: n}
}

// RowsOffset combines a page size with an offset.
func RowsOffset(rows, offset int) ResultWindow {
	return ResultWindow{kind: windowRowsOffset, rows: rows, offset: offset}
}

// Sample requests n random items. A sample overrides every other
// parameter of the query it is attached to.
func Sample(n int) ResultWindow {
	return ResultWindow{kind: windowSample, sample: n}
}

// IsSample reports whether the window requests a random sample.
func (w ResultWindow) IsSample() bool {
	return w.kind == windowSample
}

// RowsLimit returns the page size carried by the window, if any.
func (w ResultWindow) RowsLimit() (int, bool) {
	switch w.kind {
	case windowRows, windowRowsOffset:
		return w.rows, true
	case windowSample:
		return w.sample, true
	case windowOffset:
		return 0, false
	}

	return 0, false
}

func (w ResultWindow) params() []string {
	switch w.kind {
	case windowRows:
		return []string{"rows=" + strconv.Itoa(w.rows)}
	case windowOffset:
		return []string{"offset=" + strconv.Itoa(w.offset)}
	case windowRowsOffset:
		return []string{"rows=" + strconv.Itoa(w.rows), "offset=" + strconv.Itoa(w.offset)}
	case windowSample:
		return []string{"sample=" + strconv.Itoa(w.sample)}
	}

	return nil
}

// Cursor is a deep-paging position. An empty Token requests a fresh cursor (`*`);
// Rows <= 0 leaves the page size to the server.
type Cursor struct {
	Token string
	Rows  int
}

// WorkResultWindow is the window accepted by works queries: either a standard
// ResultWindow or a deep-paging Cursor.
type WorkResultWindow struct {
	standard *ResultWindow
	cursor   *Cursor
}

// StandardWindow wraps a ResultWindow for use on a works query.
func StandardWindow(w ResultWindow) WorkResultWindow {
	return WorkResultWindow{standard: &w}
}

// NewCursor starts a deep-paging session.
func NewCursor() WorkResultWindow {
	return WorkResultWindow{cursor: &Cursor{}}
}

// CursorFrom continues a deep-paging session from token.
func CursorFrom(token string) WorkResultWindow {
	return WorkResultWindow{cursor: &Cursor{Token: token}}
}

// CursorWindow wraps an explicit cursor position.
func CursorWindow(c Cursor) WorkResultWindow {
	return WorkResultWindow{cursor: &c}
}

// Cursor returns the cursor position when the window is a cursor.
func (w WorkResultWindow) Cursor() (Cursor, bool) {
	if w.cursor == nil {
		return Cursor{}, false
	}

	return *w.cursor, true
}

// Standard returns the standard window when the window is not a cursor.
func (w WorkResultWindow) Standard() (ResultWindow, bool) {
	if w.standard == nil {
		return ResultWindow{}, false
	}

	return *w.standard, true
}

// IsCursor reports whether the window is a deep-paging cursor.
func (w WorkResultWindow) IsCursor() bool {
	return w.cursor != nil
}

// WithToken returns a copy of a cursor window positioned at token. A standard
// window is returned unchanged.
func (w WorkResultWindow) WithToken(token string) WorkResultWindow {
	if w.cursor == nil {
		return w
	}

	next := *w.cursor
	next.Token = token

	return WorkResultWindow{cursor: &next}
}

func (w WorkResultWindow) isSample() bool {
	return w.standard != nil && w.standard.IsSample()
}

func (w WorkResultWindow) params() []string {
	if w.standard != nil {
		return w.standard.params()
	}

	if w.cursor == nil {
		return nil
	}

	token := w.cursor.Token
	if token == "" {
		token = "*"
	} else {
		token = url.QueryEscape(token)
	}

	params := []string{"cursor=" + token}
	if w.cursor.Rows > 0 {
		params = append(params, "rows="+strconv.Itoa(w.cursor.Rows))
	}

	return params
}
