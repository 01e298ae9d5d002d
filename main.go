package main

import (
	"fmt"
	"log"
	"os"

	"github.com/banachtech/quantmetrics/api"
	"github.com/banachtech/quantmetrics/options"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
)

func main() {
	_ = godotenv.Load()

	// Batch warm-up: price a delta surface per underlying before serving,
	// the same way the engine is exercised from the command line.
	tickers := []string{"AAPL", "META", "TSLA"}
	quotes := map[string]options.Quote{
		"AAPL": {Spot: 185.0, Sigma: 0.22, Dividend: 0.005, RiskFree: 0.05},
		"META": {Spot: 480.0, Sigma: 0.30, Dividend: 0.0, RiskFree: 0.05},
		"TSLA": {Spot: 250.0, Sigma: 0.45, Dividend: 0.0, RiskFree: 0.05},
	}
	spot := map[string]float64{}
	for k, v := range quotes {
		spot[k] = v.Spot
	}
	strikes := options.StrikeGrid(tickers, spot, 5.0, 0.25)
	expiries := options.Expiries(30)

	cell, err := options.ByName("delta", options.Call)
	if err != nil {
		log.Fatal(err)
	}
	bar := progressBar(len(tickers))
	for _, ticker := range tickers {
		options.Compute([]string{ticker}, quotes, strikes, expiries, cell)
		bar.Add(1)
	}
	fmt.Println("warm-up surfaces computed")

	keyHash := os.Getenv("QUANTMETRICS_KEY_HASH")
	if keyHash == "" {
		log.Fatal("QUANTMETRICS_KEY_HASH is not set")
	}
	address := os.Getenv("QUANTMETRICS_ADDR")
	if address == "" {
		address = ":8080"
	}

	server := api.NewServer(keyHash)
	if err := server.Start(address); err != nil {
		log.Fatal(err)
	}
}

func progressBar(length int) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
	)
}
