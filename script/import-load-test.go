package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// PreviewResponse is the subset of POST /imports/preview the script reads
type PreviewResponse struct {
	Source     string            `json:"source"`
	SourceType string            `json:"sourceType"`
	Drafts     []json.RawMessage `json:"drafts"`
}

// ImportResponse represents the API response of POST /imports
type ImportResponse struct {
	BatchID         string `json:"batchId"`
	RowCount        int    `json:"rowCount"`
	SkippedCount    int    `json:"skippedCount"`
	FailedCount     int    `json:"failedCount"`
	ProcessedGroups int    `json:"processedGroups"`
	DedupPending    bool   `json:"dedupPending"`
	BatchPending    bool   `json:"batchPending"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	File         string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Import       ImportResponse
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	Files              map[string]*FileStats
	Lock               sync.Mutex
}

// FileStats tracks what repeated uploads of one file persisted
type FileStats struct {
	Drafts   int
	Uploads  int
	Inserted int
	Skipped  int
	Failed   int
	Batches  int
	Groups   int
	Pending  int
}

// upload is one file held in memory so workers can resend it
type upload struct {
	name    string
	content []byte
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 50, "Total number of uploads to make")
	filesStr := flag.String("f", "", "Comma-separated list of statement files to upload (required)")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	source := flag.String("source", "", "Optional source hint (alipay, wechat, icbc, cmb)")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	if *filesStr == "" {
		fmt.Println("Error: -f is required.")
		flag.Usage()
		os.Exit(1)
	}

	var uploads []upload
	for _, path := range strings.Split(*filesStr, ",") {
		content, err := os.ReadFile(strings.TrimSpace(path))
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		uploads = append(uploads, upload{name: filepath.Base(path), content: content})
	}

	client := &http.Client{Timeout: 60 * time.Second}

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		Files:         make(map[string]*FileStats),
	}

	// Preview every file first so the report knows how many distinct drafts each holds
	for _, u := range uploads {
		status, body, err := send(client, *baseURL+"/imports/preview", u, *source)
		if err != nil || status != http.StatusOK {
			fmt.Printf("Error previewing %s: status %d, %v\n", u.name, status, err)
			os.Exit(1)
		}
		var preview PreviewResponse
		if err := json.Unmarshal(body, &preview); err != nil {
			fmt.Printf("Error decoding preview of %s: %v\n", u.name, err)
			os.Exit(1)
		}
		stats.Files[u.name] = &FileStats{Drafts: len(preview.Drafts)}
		fmt.Printf("%s: %s/%s, %d drafts\n", u.name, preview.Source, preview.SourceType, len(preview.Drafts))
	}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total uploads: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *source, *delayMs, uploads, jobs, results)
		}()
	}

	// Fill the jobs channel
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	// Collect results until every worker has finished
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			record(stats, result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	wg.Wait()
	close(results)
	<-collected

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(client *http.Client, baseURL, source string, delayMs int, uploads []upload,
	jobs <-chan int, results chan<- TestResult) {

	for jobID := range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Round-robin so every file is uploaded concurrently with itself
		u := uploads[jobID%len(uploads)]

		startTime := time.Now()
		status, body, err := send(client, baseURL+"/imports", u, source)
		result := TestResult{File: u.name, ResponseTime: time.Since(startTime), StatusCode: status}

		switch {
		case err != nil:
			result.Error = err
		case status != http.StatusOK && status != http.StatusCreated:
			result.Error = fmt.Errorf("HTTP status code %d", status)
		default:
			if err := json.Unmarshal(body, &result.Import); err != nil {
				result.Error = fmt.Errorf("decode response: %w", err)
			} else {
				result.Success = true
			}
		}

		results <- result
	}
}

// send posts one file as multipart form data
func send(client *http.Client, url string, u upload, source string) (int, []byte, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", u.name)
	if err != nil {
		return 0, nil, err
	}
	if _, err := part.Write(u.content); err != nil {
		return 0, nil, err
	}
	if source != "" {
		if err := w.WriteField("source", source); err != nil {
			return 0, nil, err
		}
	}
	if err := w.Close(); err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, &body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, err
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	file := stats.Files[result.File]
	file.Uploads++

	if !result.Success {
		stats.FailedRequests++
		stats.ErrorCounts[result.Error.Error()]++
		return
	}

	stats.SuccessfulRequests++
	file.Inserted += result.Import.RowCount
	file.Skipped += result.Import.SkippedCount
	file.Failed += result.Import.FailedCount
	file.Groups += result.Import.ProcessedGroups
	if result.Import.BatchID != "" {
		file.Batches++
	}
	if result.Import.DedupPending || result.Import.BatchPending {
		file.Pending++
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Uploads:       %d\n", stats.TotalRequests)
	fmt.Printf("Successful Uploads:  %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Uploads:      %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Uploads per second:  %.2f\n", float64(stats.SuccessfulRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	// Every draft must be persisted at most once no matter how many uploads raced
	fmt.Println("\n----------------- IDEMPOTENCE -----------------")
	idempotent := true
	for name, f := range stats.Files {
		ok := f.Inserted <= f.Drafts
		if !ok {
			idempotent = false
		}
		fmt.Printf("%-30s uploads=%d drafts=%d inserted=%d skipped=%d failed=%d batches=%d groups=%d pending=%d %s\n",
			name, f.Uploads, f.Drafts, f.Inserted, f.Skipped, f.Failed, f.Batches, f.Groups, f.Pending, mark(ok))
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if idempotent && stats.FailedRequests == 0 {
		fmt.Println("✅ Repeated uploads persisted every draft at most once")
	} else {
		fmt.Println("❌ Duplicate inserts or failed uploads detected")
		os.Exit(1)
	}
	fmt.Println("================================================")
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
