package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgames/internal/game"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in      string
		want    Selector
		wantErr bool
	}{
		{in: "T", want: SelectTicTacToe},
		{in: "o", want: SelectOrderAndChaos},
		{in: " s ", want: SelectSuperTicTacToe},
		{in: "Super", want: SelectSuperTicTacToe},
		{in: "", wantErr: true},
		{in: "q", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelector(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_Name(t *testing.T) {
	assert.Equal(t, game.NameTicTacToe, SelectTicTacToe.Name())
	assert.Equal(t, game.NameOrderAndChaos, SelectOrderAndChaos.Name())
	assert.Equal(t, game.NameSuperTicTacToe, SelectSuperTicTacToe.Name())
}

func TestParseCoord(t *testing.T) {
	got, err := ParseCoord("2, 7")
	require.NoError(t, err)
	assert.Equal(t, game.Coord{Row: 2, Col: 7}, got)

	// bounds are left to the game
	got, err = ParseCoord("-1,99")
	require.NoError(t, err)
	assert.Equal(t, game.Coord{Row: -1, Col: 99}, got)

	for _, in := range []string{"", "1", "1,2,3", "a,b", "1;2"} {
		_, err := ParseCoord(in)
		assert.ErrorIs(t, err, ErrMalformedInput, in)
	}
}

func TestParseBoardSize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantRows int
		wantCols int
		wantErr  bool
	}{
		{name: "blank means default", in: ""},
		{name: "square", in: "4,4", wantRows: 4, wantCols: 4},
		{name: "single row", in: "1, 7", wantRows: 1, wantCols: 7},
		{name: "largest", in: "40,40", wantRows: 40, wantCols: 40},
		{name: "too many rows", in: "41,3", wantErr: true},
		{name: "zero columns", in: "3,0", wantErr: true},
		{name: "single cell", in: "1,1", wantErr: true},
		{name: "garbage", in: "big", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols, err := ParseBoardSize(tt.in, 40, 40)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
			assert.Equal(t, tt.wantCols, cols)
		})
	}
}

func TestParseWinLength(t *testing.T) {
	n, err := ParseWinLength("")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = ParseWinLength(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = ParseWinLength("0")
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = ParseWinLength("four")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseYesNo(t *testing.T) {
	for _, in := range []string{"y", "Y", "yes", " YES "} {
		got, err := ParseYesNo(in)
		require.NoError(t, err)
		assert.True(t, got, in)
	}
	for _, in := range []string{"n", "No"} {
		got, err := ParseYesNo(in)
		require.NoError(t, err)
		assert.False(t, got, in)
	}
	_, err := ParseYesNo("maybe")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParsePlayers(t *testing.T) {
	assert.Equal(t, []string{"alice", "bob"}, ParsePlayers(" alice , ,bob,"))
	assert.Nil(t, ParsePlayers(""))
	assert.Nil(t, ParsePlayers(" , "))
}

func TestParsePiece(t *testing.T) {
	got, err := ParsePiece("o")
	require.NoError(t, err)
	assert.Equal(t, game.PieceO, got)

	_, err = ParsePiece("q")
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.ErrorIs(t, err, game.ErrInvalidPiece)
}

func TestParseLabel(t *testing.T) {
	labels := []string{"A", "B", "C"}

	got, err := ParseLabel(" b ", labels)
	require.NoError(t, err)
	assert.Equal(t, "B", got)

	_, err = ParseLabel("D", labels)
	assert.ErrorIs(t, err, ErrMalformedInput)
}
