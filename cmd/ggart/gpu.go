//go:build gpu

package main

// Registers the GPU accelerator with gg.
import _ "github.com/gogpu/gg/gpu"
