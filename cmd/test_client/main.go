package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Smoke test against a real tenant. Needs KOT_ACCESS_TOKEN in the environment
// and a built server binary.
func main() {
	serverBin := flag.String("server", "./bin/kingoftime-mcp", "path to the server binary")
	employeeCode := flag.String("employee", "", "employee code for get_employee")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := exec.Command(*serverBin)
	cmd.Env = os.Environ()
	cmd.Stderr = os.Stderr

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "kingoftime-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testCall(ctx, session, "check_token", nil)
	testCall(ctx, session, "get_company", nil)
	testCall(ctx, session, "list_divisions", nil)
	testCall(ctx, session, "get_daily_workings", map[string]any{
		"date": time.Now().Format("2006-01-02"),
	})
	if *employeeCode != "" {
		testCall(ctx, session, "get_employee", map[string]any{
			"employee_code": *employeeCode,
		})
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func testCall(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\nTEST: %s\n", name)

	if args == nil {
		args = map[string]any{}
	}
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}

	printResult(result)
	if result.IsError {
		fmt.Printf("%s returned a tool error\n", name)
		return
	}
	fmt.Printf("%s passed\n", name)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
