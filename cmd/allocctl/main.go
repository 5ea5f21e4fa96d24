// Command allocctl is a test and inspection driver for the suballoc
// package: it runs scripted or randomized allocation workloads and reports
// the resulting block layout and statistics.
package main

func main() {
	execute()
}
