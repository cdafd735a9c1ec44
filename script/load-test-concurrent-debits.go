package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// debitRequest represents the debit payload
type debitRequest struct {
	Amount         int64  `json:"amount"`
	Category       string `json:"category"`
	Description    string `json:"description,omitempty"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

type creditRequest struct {
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
}

type reconcileResponse struct {
	AccountBalance  int64 `json:"accountBalance"`
	LedgerSum       int64 `json:"ledgerSum"`
	TransactionRows int64 `json:"transactionRows"`
	Consistent      bool  `json:"consistent"`
}

// testResult contains metrics for a single request
type testResult struct {
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// testStats contains aggregated test statistics
type testStats struct {
	sync.Mutex
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	ResponseTimes []time.Duration
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	adminToken := flag.String("admin-token", "", "Bearer token with the admin role (credit-ledger token <id> --role admin)")
	userID := flag.String("user", "load-test-user", "Account to debit concurrently")
	concurrency := flag.Int("c", 20, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of debit requests")
	amount := flag.Int64("amount", 5, "Credits per debit")
	seed := flag.Int64("seed", 500, "Credits loaded before the run")
	flag.Parse()

	if *adminToken == "" {
		fmt.Fprintln(os.Stderr, "-admin-token is required")
		os.Exit(2)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	accountURL := fmt.Sprintf("%s/api/v1/admin/accounts/%s", *baseURL, *userID)

	if *seed > 0 {
		status, err := post(client, accountURL+"/credit", *adminToken, creditRequest{Amount: *seed, Category: "promo.load-test"})
		if err != nil || status != http.StatusCreated {
			fmt.Fprintf(os.Stderr, "seeding credit failed: status=%d err=%v\n", status, err)
			os.Exit(1)
		}
	}

	before, err := reconcile(client, accountURL, *adminToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconcile before run: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Debiting %s: %d requests of %d credits, concurrency %d, starting balance %d\n",
		*userID, *totalRequests, *amount, *concurrency, before.AccountBalance)

	stats := &testStats{
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for jobID := range jobs {
				r := debit(client, accountURL+"/debit", *adminToken, debitRequest{
					Amount:         *amount,
					Category:       "tool.load-test",
					IdempotencyKey: fmt.Sprintf("load-%d-%d-%d", startTime.UnixNano(), workerID, jobID),
				})
				stats.record(r)
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(startTime)

	after, err := reconcile(client, accountURL, *adminToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconcile after run: %v\n", err)
		os.Exit(1)
	}

	succeeded := int64(stats.StatusCounts[http.StatusCreated])
	expected := before.AccountBalance - succeeded*(*amount)
	printResults(stats, *totalRequests, elapsed)

	fmt.Println("\n----------------- LEDGER CHECK -----------------")
	fmt.Printf("Balance before:      %d\n", before.AccountBalance)
	fmt.Printf("Balance after:       %d (expected %d)\n", after.AccountBalance, expected)
	fmt.Printf("Ledger sum:          %d\n", after.LedgerSum)
	fmt.Printf("Consistent:          %v\n", after.Consistent)

	if after.AccountBalance != expected || !after.Consistent || after.AccountBalance < 0 {
		fmt.Println("❌ LEDGER INVARIANT VIOLATED")
		os.Exit(1)
	}
	fmt.Println("✅ Ledger consistent under concurrent debits")
}

func (s *testStats) record(r testResult) {
	s.Lock()
	defer s.Unlock()
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	if r.Err != nil {
		s.ErrorCounts[r.Err.Error()]++
		return
	}
	s.StatusCounts[r.StatusCode]++
}

func debit(client *http.Client, url, token string, body debitRequest) testResult {
	start := time.Now()
	status, err := post(client, url, token, body)
	return testResult{StatusCode: status, ResponseTime: time.Since(start), Err: err}
}

func post(client *http.Client, url, token string, body any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func reconcile(client *http.Client, accountURL, token string) (*reconcileResponse, error) {
	req, err := http.NewRequest(http.MethodGet, accountURL+"/reconcile", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var out reconcileResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func printResults(stats *testStats, total int, elapsed time.Duration) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", total)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(total)/elapsed.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("%d %-22s %d\n", code, http.StatusText(code)+":", stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
