package game

// Line is a run of winLength collinear coordinates with a constant step
type Line []Coord

// directions in enumeration order: horizontal, vertical, diagonal, anti-diagonal
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// DefaultWinLength is the run length used when the caller has no preference
func DefaultWinLength(rows, cols int) int {
	return max(min(rows, cols), 2)
}

// ValidateWinLength checks winLength against the board geometry
func ValidateWinLength(rows, cols, winLength int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidBoardSize
	}
	if winLength < 2 || winLength > max(rows, cols) {
		return ErrInvalidWinLength
	}
	return nil
}

// GenerateLines returns every candidate winning line of winLength cells on a
// rows x cols board. The order is deterministic for fixed inputs.
func GenerateLines(rows, cols, winLength int) ([]Line, error) {
	if err := ValidateWinLength(rows, cols, winLength); err != nil {
		return nil, err
	}

	var lines []Line
	for _, d := range directions {
		dr, dc := d[0], d[1]
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				endR := r + dr*(winLength-1)
				endC := c + dc*(winLength-1)
				if endR < 0 || endR >= rows || endC < 0 || endC >= cols {
					continue
				}
				line := make(Line, winLength)
				for i := range line {
					line[i] = Coord{Row: r + dr*i, Col: c + dc*i}
				}
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}

type lineKey struct {
	rows, cols, winLength int
}

// LineCache holds generated line sets keyed by geometry. Each game owns its own.
type LineCache struct {
	sets map[lineKey][]Line
}

// NewLineCache creates an empty cache
func NewLineCache() *LineCache {
	return &LineCache{sets: make(map[lineKey][]Line)}
}

// Lines returns the cached line set, generating it on first use
func (lc *LineCache) Lines(rows, cols, winLength int) ([]Line, error) {
	key := lineKey{rows: rows, cols: cols, winLength: winLength}
	if lines, ok := lc.sets[key]; ok {
		return lines, nil
	}

	lines, err := GenerateLines(rows, cols, winLength)
	if err != nil {
		return nil, err
	}
	lc.sets[key] = lines
	return lines, nil
}

// Len returns the number of cached geometries
func (lc *LineCache) Len() int {
	return len(lc.sets)
}
