package linkedmap

import "errors"

// ErrMemoryLimit returned by LimitAllocator when a grow request would exceed its budget
var ErrMemoryLimit = errors.New("linkedmap: memory limit exceeded")
