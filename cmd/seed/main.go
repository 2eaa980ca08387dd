package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yungbote/quizhub-backend/internal/app"
	types "github.com/yungbote/quizhub-backend/internal/domain"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/seed"
)

type quizCreator interface {
	Create(ctx context.Context, ownerID uint, in types.IncomingFullQuiz) (uint, error)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run returns the process exit code so deferred cleanup always happens.
func run(ctx context.Context, args []string, out io.Writer) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(out)
	var file, ownerEmail string
	var dryRun bool
	fs.StringVar(&file, "file", "", "YAML file with quizzes to create")
	fs.StringVar(&ownerEmail, "owner", "", "email of the registered user who will own the quizzes")
	fs.BoolVar(&dryRun, "dry-run", false, "validate the file without writing anything")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(file) == "" {
		fmt.Fprintln(out, "-file is required")
		return 2
	}
	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(out, "open %s: %v\n", file, err)
		return 1
	}
	quizzes, err := seed.Load(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(out, "load %s: %v\n", file, err)
		return 1
	}
	if dryRun {
		for _, q := range quizzes {
			fmt.Fprintf(out, "would create %q (%d questions, %d results)\n", q.Quiz.Name, len(q.Questions), len(q.Results))
		}
		return 0
	}
	if strings.TrimSpace(ownerEmail) == "" {
		fmt.Fprintln(out, "-owner is required")
		return 2
	}

	application, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(out, "init app: %v\n", err)
		return 1
	}
	defer application.Close()

	owner, err := application.Repos.User.GetByEmail(dbctx.Context{Ctx: ctx}, strings.TrimSpace(ownerEmail))
	if err != nil {
		fmt.Fprintf(out, "load owner: %v\n", err)
		return 1
	}
	if owner == nil {
		fmt.Fprintf(out, "no user registered as %s\n", ownerEmail)
		return 1
	}
	return createAll(ctx, application.Services.Quiz, owner.ID, quizzes, out)
}

func createAll(ctx context.Context, creator quizCreator, ownerID uint, quizzes []types.IncomingFullQuiz, out io.Writer) int {
	created := 0
	for _, q := range quizzes {
		id, err := creator.Create(ctx, ownerID, q)
		if err != nil {
			fmt.Fprintf(out, "create %q: %v\n", q.Quiz.Name, err)
			continue
		}
		created++
		fmt.Fprintf(out, "created %q as quiz %d\n", q.Quiz.Name, id)
	}
	fmt.Fprintf(out, "seeded %d of %d quizzes\n", created, len(quizzes))
	if created != len(quizzes) {
		return 1
	}
	return 0
}
