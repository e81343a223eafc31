package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrAlreadyBooked_Message(t *testing.T) {
	require.Equal(t, "You have already booked this event!", MsgAlreadyBooked)
	require.Equal(t, MsgAlreadyBooked, ErrAlreadyBooked.Error())
}
