package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// loginRequest is the payload for POST /session/login
type loginRequest struct {
	Email string `json:"email"`
}

// userResponse is the profile returned on a successful login
type userResponse struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	BTCBalance float64 `json:"btcBalance"`
}

// testResult contains metrics for a single login/read/logout cycle
type testResult struct {
	Success      bool
	ResponseTime time.Duration
	Error        error
}

// testStats contains aggregated statistics across all cycles
type testStats struct {
	TotalCycles       int
	SuccessfulCycles  int
	FailedCycles      int
	TotalTime         time.Duration
	MinResponseTime   time.Duration
	MaxResponseTime   time.Duration
	TotalResponseTime time.Duration
	ErrorCounts       map[string]int
	Lock              sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalCycles := flag.Int("n", 100, "Total number of login/read/logout cycles")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	email := flag.String("email", "sophia.carter@email.com", "Email to log in with")
	delayMs := flag.Int("delay", 100, "Delay between cycles in milliseconds")
	flag.Parse()

	fmt.Printf("Smoke testing wallet API at %s\n", *baseURL)
	fmt.Printf("Login email: %s\n", *email)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total cycles: %d\n", *totalCycles)
	fmt.Printf("Delay between cycles: %d ms\n", *delayMs)

	stats := &testStats{
		TotalCycles:     *totalCycles,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
	}

	results := make(chan testResult, *totalCycles)
	jobs := make(chan int, *totalCycles)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *email, *delayMs, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalCycles; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulCycles++
			} else {
				stats.FailedCycles++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-done
	stats.TotalTime = time.Since(startTime)

	printStats(stats)
}

// worker runs full cycles: login, read the session and dashboard, logout.
func worker(baseURL, email string, delayMs int, jobs <-chan int, results chan<- testResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		start := time.Now()
		err := runCycle(client, baseURL, email)
		results <- testResult{
			Success:      err == nil,
			ResponseTime: time.Since(start),
			Error:        err,
		}

		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}
	}
}

func runCycle(client *http.Client, baseURL, email string) error {
	body, err := json.Marshal(loginRequest{Email: email})
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/session/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var user userResponse
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			return fmt.Errorf("decode login response: %w", err)
		}
		if user.ID == 0 {
			return fmt.Errorf("login returned a user without an ID")
		}
	case http.StatusNoContent:
		return fmt.Errorf("login miss for %s, check the seed data", email)
	default:
		return fmt.Errorf("login returned status %d", resp.StatusCode)
	}

	for _, path := range []string{"/session", "/dashboard"} {
		readResp, err := client.Get(baseURL + path)
		if err != nil {
			return err
		}
		readResp.Body.Close()
		if readResp.StatusCode != http.StatusOK {
			return fmt.Errorf("GET %s returned status %d", path, readResp.StatusCode)
		}
	}

	logoutResp, err := client.Post(baseURL+"/session/logout", "application/json", nil)
	if err != nil {
		return err
	}
	logoutResp.Body.Close()
	if logoutResp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("logout returned status %d", logoutResp.StatusCode)
	}

	return nil
}

func printStats(stats *testStats) {
	fmt.Println("\n--- Results ---")
	fmt.Printf("Total cycles:      %d\n", stats.TotalCycles)
	fmt.Printf("Successful:        %d\n", stats.SuccessfulCycles)
	fmt.Printf("Failed:            %d\n", stats.FailedCycles)
	fmt.Printf("Total time:        %s\n", stats.TotalTime)

	completed := stats.SuccessfulCycles + stats.FailedCycles
	if completed > 0 {
		avg := stats.TotalResponseTime / time.Duration(completed)
		fmt.Printf("Min cycle time:    %s\n", stats.MinResponseTime)
		fmt.Printf("Max cycle time:    %s\n", stats.MaxResponseTime)
		fmt.Printf("Avg cycle time:    %s\n", avg)
		fmt.Printf("Cycles per second: %.1f\n", float64(completed)/stats.TotalTime.Seconds())
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\nErrors:")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("  %dx %s\n", count, msg)
		}
	}
}
