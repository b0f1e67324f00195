package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora/v4"
	"go.uber.org/zap"

	"github.com/chilly266futon/futuresBot/internal/binance"
	"github.com/chilly266futon/futuresBot/internal/config"
	"github.com/chilly266futon/futuresBot/internal/domain"
	"github.com/chilly266futon/futuresBot/internal/logging"
	"github.com/chilly266futon/futuresBot/internal/service"
)

const (
	envAPIKey    = "BINANCE_API_KEY"
	envAPISecret = "BINANCE_API_SECRET"

	divider = "────────────────────────────────────────────────────"
)

func main() {
	var (
		configPath      = flag.String("config", "configs/config.yaml", "Path to config file")
		symbol          = flag.String("symbol", "", "Trading pair, e.g. BTCUSDT")
		side            = flag.String("side", "", "BUY or SELL")
		orderType       = flag.String("type", "", "MARKET, LIMIT or STOP_MARKET")
		quantity        = flag.String("quantity", "", "Amount of the base asset to trade, e.g. 0.01")
		price           = flag.String("price", "", "Limit price (LIMIT) or stop trigger price (STOP_MARKET); unused for MARKET")
		logLevel        = flag.String("log-level", "", "Console log verbosity: debug, info, warn, error")
		checkConnection = flag.Bool("check-connection", false, "Ping the exchange before placing the order")
	)
	flag.Parse()

	if *symbol == "" || *side == "" || *orderType == "" || *quantity == "" {
		fmt.Fprintln(os.Stderr, "missing required flags: -symbol, -side, -type and -quantity")
		flag.Usage()
		os.Exit(2)
	}

	// Best effort: credentials may also come from the real environment.
	_ = godotenv.Load()

	cfg := loadConfig(*configPath)
	if *logLevel != "" {
		cfg.Logger.Level = *logLevel
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	apiKey := os.Getenv(envAPIKey)
	apiSecret := os.Getenv(envAPISecret)
	if apiKey == "" || apiSecret == "" {
		fmt.Fprintf(os.Stderr,
			"\n%s\n\n  Set the following environment variables before running:\n\n"+
				"      export %s='your_key'\n      export %s='your_secret'\n\n"+
				"  Or create a .env file in the project root (see .env.example).\n\n",
			aurora.Red("Missing credentials."), envAPIKey, envAPISecret,
		)
		os.Exit(2)
	}

	client, err := binance.NewClient(
		binance.Config{
			BaseURL:           cfg.Exchange.BaseURL,
			Timeout:           cfg.Exchange.Timeout,
			RecvWindow:        cfg.Exchange.RecvWindow,
			Retry:             binance.RetryPolicy(cfg.Exchange.Retry),
			RequestsPerSecond: cfg.Exchange.RateLimit.RequestsPerSecond,
			Burst:             cfg.Exchange.RateLimit.Burst,
			Breaker:           binance.BreakerConfig(cfg.Exchange.Breaker),
		},
		binance.Credentials{APIKey: apiKey, APISecret: apiSecret},
		logger,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s %v\n\n", aurora.Red("Configuration error:"), err)
		os.Exit(2)
	}
	defer client.Close()

	svc := service.NewOrderService(client, logger)
	ctx := context.Background()

	if *checkConnection {
		if err := svc.CheckConnectivity(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "\n%s %v\n\n", aurora.Red("Cannot reach the exchange:"), err)
			os.Exit(1)
		}
		fmt.Printf("%s %s\n", aurora.Green("Connected to"), cfg.Exchange.BaseURL)
	}

	if err := client.SyncTime(ctx); err != nil {
		// Not fatal: the local clock plus recvWindow is usually enough.
		logger.Warn("time sync failed, using local clock", zap.Error(err))
	}

	req := domain.OrderRequest{
		Symbol:   *symbol,
		Side:     *side,
		Type:     *orderType,
		Quantity: *quantity,
		Price:    *price,
	}

	printRequestSummary(req)

	result := svc.PlaceOrder(ctx, req)

	logger.Sync()
	os.Exit(printResult(result))
}

func loadConfig(path string) *config.Config {
	if _, err := os.Stat(path); err != nil {
		return config.Default()
	}
	return config.MustLoad(path)
}

func printRequestSummary(req domain.OrderRequest) {
	fmt.Println()
	fmt.Println(divider)
	fmt.Println(aurora.Bold("    ORDER REQUEST SUMMARY"))
	fmt.Println(divider)
	printRow("Symbol:", strings.ToUpper(req.Symbol))
	printRow("Side:", strings.ToUpper(req.Side))
	printRow("Order Type:", strings.ToUpper(req.Type))
	printRow("Quantity:", req.Quantity)
	if req.Price != "" {
		printRow("Price / Stop:", req.Price)
	}
	fmt.Println(divider)
}

func printResult(result domain.ExecutionResult) int {
	switch result.Kind {
	case domain.ResultSuccess:
		printAck(result.Order)
		return 0

	case domain.ResultValidationFailure:
		fmt.Fprintf(os.Stderr, "\n%s %s\n\n", aurora.Red("Validation error:"), result.Reason)
		return 1

	case domain.ResultAPIFailure:
		fmt.Fprintf(os.Stderr,
			"\n%s (code %d): %s\n"+
				"  Common causes:\n"+
				"    - invalid API key / secret\n"+
				"    - insufficient testnet balance\n"+
				"    - quantity below minimum notional\n"+
				"    - price too far from mark price (LIMIT)\n\n",
			aurora.Red("Exchange rejected the order"), result.Code, result.Reason,
		)
		return 1

	case domain.ResultNetworkFailure:
		fmt.Fprintf(os.Stderr, "\n%s %s (attempts: %d)\n\n",
			aurora.Red("Network error:"), result.Reason, result.Attempts)
		return 1

	default:
		fmt.Fprintf(os.Stderr, "\n%s %s\n\n", aurora.Red("Unexpected result:"), result.Kind)
		return 1
	}
}

func printAck(ack *domain.OrderAck) {
	fmt.Println()
	fmt.Println(divider)
	fmt.Println(aurora.Green("   ORDER PLACED SUCCESSFULLY"))
	fmt.Println(divider)
	printRow("Order ID:", fmt.Sprintf("%d", ack.OrderID))
	printRow("Client OID:", ack.ClientOrderID)
	printRow("Symbol:", ack.Symbol)
	printRow("Side:", ack.Side)
	printRow("Type:", ack.Type)
	printRow("Status:", ack.Status)
	printRow("Quantity:", ack.OrigQuantity.String())
	printRow("Executed Qty:", ack.ExecutedQuantity.String())
	if ack.AvgPrice.IsPositive() {
		printRow("Avg / Set Price:", ack.AvgPrice.String())
	}
	fmt.Println(divider)
	fmt.Println()
}

func printRow(label, value string) {
	if value == "" {
		value = "—"
	}
	fmt.Printf("  %-22s %s\n", label, value)
}
