package qecsynth

import "github.com/squid2010/qecsynth/codes"

func FiveQubitOneQubit() (*Result, error) { return OneQubit(codes.FiveQubit()) }
func FiveQubitBellState() (*Result, error) { return BellState(codes.FiveQubit()) }
func FiveQubitGHZState(n int) (*Result, error) { return GHZState(codes.FiveQubit(), n) }

func ShorOneQubit() (*Result, error) { return OneQubit(codes.Shor()) }
func ShorBellState() (*Result, error) { return BellState(codes.Shor()) }
func ShorGHZState(n int) (*Result, error) { return GHZState(codes.Shor(), n) }

func SteaneOneQubit() (*Result, error) { return OneQubit(codes.Steane()) }
func SteaneBellState() (*Result, error) { return BellState(codes.Steane()) }
func SteaneGHZState(n int) (*Result, error) { return GHZState(codes.Steane(), n) }
