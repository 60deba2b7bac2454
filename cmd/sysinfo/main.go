package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sunshine-JLU/nanobot/internal/conf"
	"github.com/sunshine-JLU/nanobot/internal/tools"
)

func main() {
	conf.LoadConfig("config.toml")

	args := map[string]any{}
	if len(os.Args) > 1 {
		args["info_type"] = os.Args[1]
	}

	report, err := tools.NewSystemInfoTool().Execute(context.Background(), args)
	if err != nil {
		log.Fatalf("Failed to run system_info: %s", err)
	}
	fmt.Println(report)
}
