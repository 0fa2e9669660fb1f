package dataset

import "github.com/pkg/errors"

var (
	ErrEmptyDataset    = errors.New("dataset has no labels")
	ErrNoSeries        = errors.New("dataset has no series")
	ErrLengthMismatch  = errors.New("series length does not match label count")
	ErrOutOfRange      = errors.New("accuracy outside [0, 100]")
	ErrEmptyMatrix     = errors.New("confusion matrix is empty")
	ErrNotSquare       = errors.New("confusion matrix is not square")
	ErrNegativeCount   = errors.New("confusion matrix has a negative count")
	ErrNonInteger      = errors.New("confusion matrix has a non-integer count")
	ErrLabelMismatch   = errors.New("class labels do not match matrix size")
	ErrInvalidDocument = errors.New("invalid dataset document")
)
