package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: board-client [flags] <command> [args]

Commands:
  register <name>                        create an account, print its credential
  rename   <id> <password> <new name>    change an account's display name
  post     <id> <password> <itemId> <message>
                                         post a comment (use -parent for a reply)
  list     <itemId> [lastId]             print one page of an item's comments
  watch    <itemId>                      poll for new comments until interrupted
`

func main() {
	printBuildInfo()

	address := flag.String("a", "localhost:8080", "server address")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	parent := flag.Int64("parent", 0, "parent comment id for post (0 for top level)")
	interval := flag.Duration("interval", 10*time.Second, "poll interval for watch")
	flag.Parse()

	log := logger.NewLogger("board-client")

	client, err := adapter.NewHTTPBoardClient(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating board client")
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	switch args[0] {
	case "register":
		err = register(ctx, client, args[1:])
	case "rename":
		err = rename(ctx, client, args[1:])
	case "post":
		err = post(ctx, client, args[1:], *parent)
	case "list":
		err = list(ctx, client, args[1:])
	case "watch":
		err = watch(ctx, client, args[1:], *interval)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func register(ctx context.Context, client adapter.BoardClient, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("register expects exactly one argument: <name>")
	}

	user, err := client.Register(ctx, args[0])
	if err != nil {
		return err
	}

	// the credential is shown once and cannot be recovered later
	fmt.Printf("id: %d\nname: %s\npassword: %s\n", user.ID, user.Name, user.Password)
	return nil
}

func rename(ctx context.Context, client adapter.BoardClient, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("rename expects three arguments: <id> <password> <new name>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	client.SetCredentials(id, args[1])

	user, err := client.Rename(ctx, args[2])
	if err != nil {
		return err
	}

	fmt.Printf("id: %d\nname: %s\n", user.ID, user.Name)
	return nil
}

func post(ctx context.Context, client adapter.BoardClient, args []string, parent int64) error {
	if len(args) != 4 {
		return fmt.Errorf("post expects four arguments: <id> <password> <itemId> <message>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	client.SetCredentials(id, args[1])

	itemID, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[2])
	}

	var parentID *int64
	if parent != 0 {
		parentID = &parent
	}

	comment, err := client.PostComment(ctx, itemID, parentID, args[3])
	if err != nil {
		return err
	}

	printComment(comment)
	return nil
}

func list(ctx context.Context, client adapter.BoardClient, args []string) error {
	if len(args) != 1 && len(args) != 2 {
		return fmt.Errorf("list expects <itemId> and an optional [lastId]")
	}

	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	var lastID int64
	if len(args) == 2 {
		if lastID, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return fmt.Errorf("invalid last comment id %q", args[1])
		}
	}

	page, err := client.Comments(ctx, itemID, lastID)
	if err != nil {
		return err
	}

	for _, comment := range page {
		printComment(comment)
	}
	return nil
}

func watch(ctx context.Context, client adapter.BoardClient, args []string, interval time.Duration) error {
	if len(args) != 1 {
		return fmt.Errorf("watch expects exactly one argument: <itemId>")
	}

	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	watchCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	poller := adapter.NewCommentPoller(client, func(page []models.Comment) {
		for _, comment := range page {
			printComment(comment)
		}
	})

	poller.Start(watchCtx, itemID, interval)

	<-watchCtx.Done()
	poller.Stop()
	return nil
}

func printComment(c models.Comment) {
	fmt.Printf("#%d [%s] %s: %s\n",
		c.ID,
		time.Unix(c.Time, 0).Format(time.RFC3339),
		c.User.Name,
		c.Message,
	)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
