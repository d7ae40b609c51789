// Package all registers every design family. Import it for its side
// effects:
//
//	import _ "github.com/gogpu/ggart/designs/all"
package all

import (
	_ "github.com/gogpu/ggart/designs/collatz"
	_ "github.com/gogpu/ggart/designs/contours"
	_ "github.com/gogpu/ggart/designs/edgedescend"
	_ "github.com/gogpu/ggart/designs/gradation"
	_ "github.com/gogpu/ggart/designs/kelly"
	_ "github.com/gogpu/ggart/designs/leparc"
	_ "github.com/gogpu/ggart/designs/repolygon"
	_ "github.com/gogpu/ggart/designs/spindles"
	_ "github.com/gogpu/ggart/designs/tawney"
	_ "github.com/gogpu/ggart/designs/tree"
)
