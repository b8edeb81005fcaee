package main

import "lawfirm_backend/internal/app"

func main() {
	app.Run()
}
