package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"location-mapper/controller"
	"location-mapper/utils"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	inputPath := flag.String("input", "", "exported location table to read (.xlsx or .csv)")
	outputPath := flag.String("output", "", "converted table to write (.xlsx or .csv)")
	filterDate := flag.String("date", "", "optional date filter, MM/DD/YYYY (blank keeps all rows)")
	configPath := flag.String("config", "", "optional columns.yaml overriding column names and map style")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	flag.Parse()

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(utils.INFO, *logFile)
	defer logger.Close()

	utils.L().Info("═══════════════════════════════════════════════════")
	utils.L().Info("  Location Mapper  ·  iOS Location Cache Analyzer")
	utils.L().Info("═══════════════════════════════════════════════════")

	if *inputPath == "" || *outputPath == "" {
		utils.L().Error("both -input and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	// ── Load config ──────────────────────────────────────────────────
	cfg := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = utils.LoadConfig(*configPath)
		if err != nil {
			utils.L().Fatal("load config: %v", err)
		}
		utils.L().Info("column config loaded from %s", *configPath)
	}

	// Output-path selection owns parent directory creation; the save
	// step itself never creates directories.
	if dir := filepath.Dir(*outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			utils.L().Fatal("create output dir: %v", err)
		}
	}

	// ── Run the pipeline once ────────────────────────────────────────
	pc := controller.NewPipelineController(cfg)
	res, err := pc.Run(*inputPath, *outputPath, *filterDate)

	switch {
	case errors.Is(err, controller.ErrNoData):
		utils.L().Info("no rows left after filtering — nothing written")
		fmt.Println("No data found for the specified date.")
		return

	case errors.Is(err, controller.ErrBadFilterDate):
		utils.L().Error("%v", err)
		fmt.Println("Invalid date format. Please enter as MM/DD/YYYY.")
		os.Exit(1)

	case err != nil && res != nil && res.TablePath != "":
		// Table written, map failed: the table artifact stays on disk.
		utils.L().Error("map generation failed: %v", err)
		fmt.Println("Data saved to:", res.TablePath)
		fmt.Println("Map could not be generated:", err)
		os.Exit(1)

	case err != nil:
		utils.L().Error("run failed: %v", err)
		fmt.Println("An error occurred:", err)
		os.Exit(1)
	}

	fmt.Println("Data saved to:", res.TablePath)
	if res.MapSkipped {
		fmt.Println(res.MapNote)
	} else {
		fmt.Println("Map saved to:", res.MapPath)
	}
}
