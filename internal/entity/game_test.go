package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Starts ongoing with X to move", func(t *testing.T) {
		// When: create a new game from the starting board
		game := NewGame("123", Initial())

		// Then: the game state should correspond to the expected initial state
		expectedGame := &Game{
			ID:     "123",
			Board:  Initial(),
			Winner: "",
			Status: StatusOngoing,
			Turn:   "X",
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Starts finished from a won position", func(t *testing.T) {
		// Given: a board that O already won
		board := mustParse(t, "XX-/OOO/X-X")

		// When: create a new game from it
		game := NewGame("123", board)

		// Then: the game is finished and O is the winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, "O", game.Winner)
		assert.Empty(t, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", Initial())

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: The game state should reflect the turn and player turn should switch
		assert.Equal(t, "X--/---/---", game.Board.String())
		assert.Equal(t, "O", game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, []Move{{Row: 0, Col: 0}}, game.History)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame("123", Initial())
		require.NoError(t, game.MakeTurn(PlayerX, Move{Row: 0, Col: 0}))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, Move{Row: 0, Col: 0})

		// Then: An ErrInvalidMove error should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		// And: The game state should remain unchanged
		assert.Equal(t, "X--/---/---", game.Board.String())
		assert.Equal(t, "O", game.Turn)
		assert.Len(t, game.History, 1)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123", Initial())

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, Move{Row: 0, Col: 1})

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Initial(), game.Board)
	})

	t.Run("Error on Invalid Cell", func(t *testing.T) {
		game := NewGame("123", Initial())

		err := game.MakeTurn(PlayerX, Move{Row: 3, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X can complete the top row
		game := NewGame("123", mustParse(t, "XX-/OO-/---"))

		// When: X plays (0,2)
		err := game.MakeTurn(PlayerX, Move{Row: 0, Col: 2})
		require.NoError(t, err)

		// Then: the game is finished with X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, "X", game.Winner)
		assert.Empty(t, game.Turn)
	})

	t.Run("Move After Tie", func(t *testing.T) {
		// Given: a game that ended in a draw
		game := NewGame("123", mustParse(t, "XOX/XOO/OXX"))
		require.Equal(t, PlayerTie, game.Winner)

		// When: player O tries to make a move after a draw
		err := game.MakeTurn(PlayerO, Move{Row: 1, Col: 1})

		// Then: ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
