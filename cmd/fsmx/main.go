// Command fsmx loads a state machine definition and drives it interactively.
package main

func main() {
	Execute()
}
