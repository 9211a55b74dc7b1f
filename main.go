package main

import (
	"fmt"

	"github.com/heathj/uievents/event"
	"github.com/heathj/uievents/event/target"
)

func main() {
	root := target.NewNode("root")
	leaf := root.AppendChild(target.NewNode("page")).AppendChild(target.NewNode("button"))

	root.On("tap", func(ctx any, ev *event.Event, data any) any {
		fmt.Printf("bubbled to %v with %v\n", ev.CurrentTarget(), data)
		return nil
	})

	ok, err := event.New("tap", event.WithBubbles(), event.WithCancelable()).Dispatch(leaf, "hello")
	fmt.Println(ok, err)
}
