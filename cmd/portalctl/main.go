// portalctl is a small terminal front-end for the portal API: it lists
// requests and complaints page by page, validates a student identity and
// shows a student's demand history.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"studesk/internal/pkg/pagination"
	"studesk/internal/portal/gateway"
)

const usage = `Usage: portalctl [-api URL] [-page-size N] <command> [args]

Commands:
  requests                     list document requests, paged
  complaints                   list complaints, paged
  validate <email> <apogee> <cin>   validate a student identity
  demands  <email> <apogee> <cin>   show a student's requests
  history  <student-id>        show a student's enrollment history
`

func main() {
	apiURL := flag.String("api", "http://localhost:3000/api", "portal API base URL")
	pageSize := flag.Int("page-size", 10, "rows per page")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	client := gateway.NewClient(*apiURL)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var err error
	switch flag.Arg(0) {
	case "requests":
		err = listRequests(ctx, client, *pageSize)
	case "complaints":
		err = listComplaints(ctx, client, *pageSize)
	case "validate":
		err = validate(ctx, client, flag.Args()[1:])
	case "demands":
		err = demands(ctx, client, flag.Args()[1:])
	case "history":
		err = history(ctx, client, flag.Args()[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func listRequests(ctx context.Context, client *gateway.Client, pageSize int) error {
	requests, err := client.ListRequests(ctx)
	if err != nil {
		return err
	}

	pager := pagination.NewPager(requests, pageSize)
	browse(pager, func(items []gateway.Request) {
		for _, r := range items {
			fmt.Printf("%-14s %-22s %-9s %s\n",
				r.ReferenceNumber, r.DocumentType, r.Status, r.CreatedAt.Format("2006-01-02"))
		}
	})
	return nil
}

func listComplaints(ctx context.Context, client *gateway.Client, pageSize int) error {
	complaints, err := client.ListComplaints(ctx)
	if err != nil {
		return err
	}

	pager := pagination.NewPager(complaints, pageSize)
	browse(pager, func(items []gateway.Complaint) {
		for _, c := range items {
			fmt.Printf("%-14s %-9s %-30s %s\n",
				c.ReferenceNumber, c.Status, truncate(c.Subject, 30), c.CreatedAt.Format("2006-01-02"))
		}
	})
	return nil
}

// browse drives a pager from stdin: n/p to move, q to quit
func browse[T any](pager *pagination.Pager[T], render func([]T)) {
	reader := bufio.NewReader(os.Stdin)
	for {
		render(pager.PageItems())
		fmt.Printf("-- %d-%d of %d (page %d/%d) [n]ext [p]rev [q]uit: ",
			pager.StartIndex(), pager.EndIndex(), pager.TotalItems(), pager.Page(), pager.TotalPages())

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		switch strings.TrimSpace(line) {
		case "n":
			pager.NextPage()
		case "p":
			pager.PreviousPage()
		case "q":
			return
		}
	}
}

func validate(ctx context.Context, client *gateway.Client, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("validate needs <email> <apogee> <cin>")
	}
	student, valid, err := client.ValidateStudent(ctx, gateway.Identity{
		Email: args[0], Apogee: args[1], CIN: args[2],
	})
	if err != nil {
		return err
	}
	if !valid {
		fmt.Println("No matching student.")
		return nil
	}
	fmt.Printf("✅ %s (apogee %s)\n", student.FullName(), student.Apogee)
	return nil
}

func demands(ctx context.Context, client *gateway.Client, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("demands needs <email> <apogee> <cin>")
	}
	rows, err := client.StudentDemands(ctx, gateway.Identity{
		Email: args[0], Apogee: args[1], CIN: args[2],
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No requests on file.")
		return nil
	}
	for _, row := range rows {
		fmt.Printf("%-14s %-30s %-9s %s\n", row.ReferenceNumber, row.Label, row.Status, row.Date)
	}
	return nil
}

func history(ctx context.Context, client *gateway.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("history needs <student-id>")
	}
	var studentID uint
	if _, err := fmt.Sscanf(args[0], "%d", &studentID); err != nil {
		return fmt.Errorf("invalid student id %q", args[0])
	}
	years, err := client.StudentHistory(ctx, studentID)
	if err != nil {
		return err
	}
	for _, year := range years {
		fmt.Printf("%s: %s\n", year.Year, strings.Join(year.Semesters, ", "))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
