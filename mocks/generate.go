package mocks

import "github.com/QuangTung97/linkedmap"

// Allocator ...
type Allocator = linkedmap.Allocator

//go:generate moq -rm -out linkedmap_mocks.go . Allocator
