package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr error
	}{
		{
			name: "valid 3x3 grid",
			rows: 3,
			cols: 3,
		},
		{
			name: "valid rectangular grid",
			rows: 2,
			cols: 7,
		},
		{
			name: "single cell",
			rows: 1,
			cols: 1,
		},
		{
			name:    "zero rows",
			rows:    0,
			cols:    3,
			wantErr: ErrInvalidBoardSize,
		},
		{
			name:    "negative columns",
			rows:    3,
			cols:    -1,
			wantErr: ErrInvalidBoardSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.rows, tt.cols)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Nil(t, grid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, grid.Rows())
			assert.Equal(t, tt.cols, grid.Cols())

			count := 0
			for cell := range grid.All() {
				assert.False(t, cell.Occupied())
				assert.Equal(t, count/tt.cols, cell.Row)
				assert.Equal(t, count%tt.cols, cell.Col)
				count++
			}
			assert.Equal(t, tt.rows*tt.cols, count)
		})
	}
}

func TestGrid_PlaceAt(t *testing.T) {
	grid, err := NewGrid(3, 4)
	require.NoError(t, err)

	err = grid.Place(1, 3, PieceX, 0, 0, "alice")
	require.NoError(t, err)

	cell, err := grid.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, PieceX, cell.Piece)
	assert.Equal(t, 0, cell.Side)
	assert.Equal(t, 0, cell.Turn)
	assert.Equal(t, "alice", cell.Actor)
	assert.Equal(t, Coord{Row: 1, Col: 3}, cell.Coord)

	// Empty cell
	cell, err = grid.At(0, 0)
	require.NoError(t, err)
	assert.False(t, cell.Occupied())

	// Out of bounds
	_, err = grid.At(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = grid.At(3, 0)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = grid.At(0, 4)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	// Occupied cell keeps its first occupant
	err = grid.Place(1, 3, PieceO, 1, 1, "bob")
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.ErrorIs(t, err, ErrInvalidMove)
	cell, _ = grid.At(1, 3)
	assert.Equal(t, PieceX, cell.Piece)
	assert.Equal(t, "alice", cell.Actor)

	err = grid.Place(5, 5, PieceX, 0, 2, "alice")
	assert.ErrorIs(t, err, ErrInvalidPosition)

	err = grid.Place(0, 0, PieceNone, 0, 2, "alice")
	assert.ErrorIs(t, err, ErrInvalidPiece)
}

func TestGrid_IsFull(t *testing.T) {
	grid, err := NewGrid(2, 3)
	require.NoError(t, err)

	assert.False(t, grid.IsFull())

	turn := 0
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			require.NoError(t, grid.Place(row, col, PieceX, 0, turn, "p"))
			turn++
		}
	}

	assert.True(t, grid.IsFull())
}

func TestGrid_OccupiedByTurn(t *testing.T) {
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)

	require.NoError(t, grid.Place(2, 2, PieceX, 0, 0, "a"))
	require.NoError(t, grid.Place(0, 0, PieceO, 1, 1, "b"))
	require.NoError(t, grid.Place(1, 1, PieceX, 0, 2, "a"))

	cells := grid.OccupiedByTurn()
	require.Len(t, cells, 3)
	assert.Equal(t, Coord{Row: 2, Col: 2}, cells[0].Coord)
	assert.Equal(t, Coord{Row: 0, Col: 0}, cells[1].Coord)
	assert.Equal(t, Coord{Row: 1, Col: 1}, cells[2].Coord)
}

func TestGrid_Clone(t *testing.T) {
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, grid.Place(0, 0, PieceX, 0, 0, "a"))

	clone := grid.Clone()

	require.NoError(t, grid.Place(2, 2, PieceO, 1, 1, "b"))

	orig, _ := grid.At(2, 2)
	copied, _ := clone.At(2, 2)
	assert.Equal(t, PieceO, orig.Piece)
	assert.False(t, copied.Occupied())

	first, _ := clone.At(0, 0)
	assert.Equal(t, PieceX, first.Piece)
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		in      string
		want    Piece
		wantErr bool
	}{
		{in: "x", want: PieceX},
		{in: "O", want: PieceO},
		{in: " o ", want: PieceO},
		{in: "Xylophone", want: PieceX},
		{in: "", wantErr: true},
		{in: "z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePiece(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPiece)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPiece_String(t *testing.T) {
	assert.Equal(t, "X", PieceX.String())
	assert.Equal(t, "O", PieceO.String())
	assert.Equal(t, " ", PieceNone.String())
}

func TestStatus_IsFinished(t *testing.T) {
	assert.False(t, StatusInProgress.IsFinished())
	assert.True(t, StatusWon.IsFinished())
	assert.True(t, StatusDrawn.IsFinished())
}
