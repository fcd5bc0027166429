package main

import (
	"context"
	"log"
	_ "time/tzdata"

	"github.com/dalemusser/waffle/app"
	"github.com/mnogodumalon/kurs70/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
