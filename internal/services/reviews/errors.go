package reviews

import "errors"

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrMovieNotFound       = errors.New("movie not found")
	ErrReviewAlreadyExists = errors.New("user already reviewed that movie")
)
