// Command regctl reads and edits the Windows registry through regkit.
package main

func main() {
	execute()
}
