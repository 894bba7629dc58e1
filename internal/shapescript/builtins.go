package shapescript

import (
	"fmt"
	"math"
	"strings"

	"github.com/dop251/goja"

	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
)

func (interp *Interpreter) registerBuiltins() {
	rt := interp.runtime

	rt.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		interp.Output = append(interp.Output, strings.Join(parts, " "))
		return goja.Undefined()
	})

	rt.Set("str", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return rt.ToValue("")
		}
		return rt.ToValue(call.Arguments[0].String())
	})

	rt.Set("line", func(call goja.FunctionCall) goja.Value {
		l := gridgeom.NewLine(interp.coordArg(call, 0), interp.coordArg(call, 2))
		return interp.add(scene.NewLine(l, labelArg(call, 4)))
	})

	rt.Set("rect", func(call goja.FunctionCall) goja.Value {
		return interp.add(scene.NewRect(interp.rectArg(call), labelArg(call, 4)))
	})

	rt.Set("border", func(call goja.FunctionCall) goja.Value {
		return interp.add(scene.NewBorder(interp.rectArg(call), labelArg(call, 4)))
	})

	rt.Set("circle", func(call goja.FunctionCall) goja.Value {
		return interp.add(scene.NewDisc(interp.circleArg(call), labelArg(call, 3)))
	})

	rt.Set("ring", func(call goja.FunctionCall) goja.Value {
		return interp.add(scene.NewRing(interp.circleArg(call), labelArg(call, 3)))
	})

	rt.Set("connect", func(call goja.FunctionCall) goja.Value {
		order := gridgeom.HorizontalFirst
		switch o := call.Argument(2); {
		case goja.IsUndefined(o), o.String() == "hv":
		case o.String() == "vh":
			order = gridgeom.VerticalFirst
		default:
			interp.throw(fmt.Errorf("connect: order must be \"hv\" or \"vh\", got %q", o.String()))
		}
		interp.check(interp.Scene.Connect(interp.intArg(call, 0), interp.intArg(call, 1), order))
		return goja.Undefined()
	})

	rt.Set("move", func(call goja.FunctionCall) goja.Value {
		interp.check(interp.Scene.Move(interp.intArg(call, 0), interp.coordArg(call, 1)))
		return goja.Undefined()
	})

	rt.Set("remove", func(call goja.FunctionCall) goja.Value {
		interp.check(interp.Scene.Remove(interp.intArg(call, 0)))
		return goja.Undefined()
	})

	rt.Set("len", func(call goja.FunctionCall) goja.Value {
		l := gridgeom.NewLine(interp.coordArg(call, 0), interp.coordArg(call, 2))
		return rt.ToValue(l.Len())
	})

	rt.Set("count", func(call goja.FunctionCall) goja.Value {
		r := interp.radiusArg(call, 0)
		return rt.ToValue(gridgeom.NewCircle(gridgeom.Coord{}, r).Count())
	})

	rt.Set("contains", func(call goja.FunctionCall) goja.Value {
		it := interp.itemArg(call, 0)
		return rt.ToValue(it.Covers(interp.coordArg(call, 1)))
	})

	rt.Set("bounds", func(call goja.FunctionCall) goja.Value {
		b := interp.itemArg(call, 0).Bounds()
		return rt.ToValue(map[string]any{
			"x": b.Position.X, "y": b.Position.Y,
			"w": b.Size.Width, "h": b.Size.Height,
		})
	})
}

// add stores it in the scene and returns its ID to the script.
func (interp *Interpreter) add(it scene.Item) goja.Value {
	id, err := interp.Scene.Add(it)
	interp.check(err)
	return interp.runtime.ToValue(id)
}

// throw raises err as a JavaScript exception.
func (interp *Interpreter) throw(err error) {
	panic(interp.runtime.NewGoError(err))
}

func (interp *Interpreter) check(err error) {
	if err != nil {
		interp.throw(err)
	}
}

// int32Arg returns argument i as an int32 within ±MaxExtent.
func (interp *Interpreter) int32Arg(call goja.FunctionCall, i int) int32 {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		interp.throw(fmt.Errorf("argument %d is missing", i+1))
	}
	f := v.ToFloat()
	if math.IsNaN(f) || f != math.Trunc(f) {
		interp.throw(fmt.Errorf("argument %d must be an integer, got %v", i+1, v))
	}
	if f < -gridgeom.MaxExtent || f > gridgeom.MaxExtent {
		interp.throw(fmt.Errorf("argument %d out of range: %v", i+1, v))
	}
	return int32(f)
}

func (interp *Interpreter) intArg(call goja.FunctionCall, i int) int {
	return int(interp.int32Arg(call, i))
}

func (interp *Interpreter) coordArg(call goja.FunctionCall, i int) gridgeom.Coord {
	return gridgeom.C(interp.int32Arg(call, i), interp.int32Arg(call, i+1))
}

func (interp *Interpreter) sizeArg(call goja.FunctionCall, i int) uint32 {
	v := interp.int32Arg(call, i)
	if v < 0 {
		interp.throw(fmt.Errorf("argument %d must not be negative, got %d", i+1, v))
	}
	return uint32(v)
}

func (interp *Interpreter) radiusArg(call goja.FunctionCall, i int) uint32 {
	r := interp.sizeArg(call, i)
	if !gridgeom.RadiusInSafeRange(r) {
		interp.throw(fmt.Errorf("radius %d out of range", r))
	}
	return r
}

func (interp *Interpreter) rectArg(call goja.FunctionCall) gridgeom.Rectangle {
	pos := interp.coordArg(call, 0)
	return gridgeom.RectangleFromSize(pos, gridgeom.Sz(interp.sizeArg(call, 2), interp.sizeArg(call, 3)))
}

func (interp *Interpreter) circleArg(call goja.FunctionCall) gridgeom.Circle {
	return gridgeom.NewCircle(interp.coordArg(call, 0), interp.radiusArg(call, 2))
}

func (interp *Interpreter) itemArg(call goja.FunctionCall, i int) *scene.Item {
	id := interp.intArg(call, i)
	it := interp.Scene.Item(id)
	if it == nil {
		interp.throw(fmt.Errorf("%w: %d", scene.ErrNoItem, id))
	}
	return it
}

func labelArg(call goja.FunctionCall, i int) string {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}
