package viewbind_test

import (
	"fmt"

	"github.com/ygrebnov/viewbind"
	"github.com/ygrebnov/viewbind/view"
	"github.com/ygrebnov/viewbind/view/viewtest"
)

type loginScreen struct {
	Title   *viewtest.Label `bind:"11"`
	Buttons []view.View     `bind:"12,13"`
	Accent  uint32          `bindcolor:"301"`
	Footer  string          `bindstring:"330"`

	_ viewbind.Handlers `onclick:"Submit(12)"`
}

func (s *loginScreen) Submit(v view.View) { fmt.Println("submit from", v.ViewID()) }

func Example() {
	root, err := viewtest.Load([]byte(`
resources:
  colors:  {301: crimson}
  strings: {330: "sign-in help"}
root:
  id: 1
  children:
    - {id: 11, kind: label, text: Sign in}
    - {id: 12, kind: button, text: OK}
    - {id: 13, kind: button, text: Cancel}
`))
	if err != nil {
		fmt.Println("fixture:", err)
		return
	}

	screen := &loginScreen{}
	u, err := viewbind.Bind(screen, root)
	if err != nil {
		fmt.Println("bind:", err)
		return
	}

	fmt.Println(screen.Title.Text)
	fmt.Println(len(screen.Buttons), "buttons")
	fmt.Printf("accent %#x\n", screen.Accent)
	fmt.Println(screen.Footer)

	root.FindViewByID(12).(*viewtest.Button).PerformClick()

	u.Unbind()
	fmt.Println("title after unbind:", screen.Title)

	// Output:
	// Sign in
	// 2 buttons
	// accent 0xffdc143c
	// sign-in help
	// submit from 12
	// title after unbind: <nil>
}
