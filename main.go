package main

import "github.com/Ankitch199316/habit-hive-wellbeing/cmd/habithive"

func main() {
	habithive.Execute()
}
