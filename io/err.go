package io

import (
	"errors"

	"github.com/ezrec/belle/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageOdd = errors.New(f("image has an odd number of bytes"))
)
