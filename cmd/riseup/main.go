package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sakialabs/RiseUp/config"
	"github.com/sakialabs/RiseUp/internal/client"
	apperrors "github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/feed"
	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/session"
	"github.com/sakialabs/RiseUp/internal/storage"
	"github.com/sakialabs/RiseUp/internal/theme"
	"github.com/sakialabs/RiseUp/internal/util"
)

// app bundles the wired client stack. Constructed once at startup and passed
// down explicitly; nothing reaches for globals.
type app struct {
	api    *client.Client
	sess   *session.Manager
	themes *theme.Store
	feed   *feed.Controller
}

func main() {
	config.Init()
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	store, err := storage.NewLocalStore(config.AppConfig.StateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	api := client.New(config.AppConfig.APIBaseURL,
		client.WithTimeout(config.AppConfig.RequestTimeout),
		client.WithLogger(util.Logger))

	a := &app{
		api:    api,
		sess:   session.NewManager(api, store),
		themes: theme.NewStore(store, terminalModeProbe),
		feed:   feed.NewController(api, 50),
	}

	ctx := context.Background()
	a.sess.Restore(ctx)

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if err := a.run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		util.Logger.Debug("command failed", zap.String("command", args[0]), zap.Error(err))
		os.Exit(1)
	}
}

// renderError maps backend and transport failures to their user-facing
// messages; anything else (usage mistakes, bad arguments) prints as-is.
func renderError(err error) string {
	var netErr *client.NetworkError
	var apiErr *client.APIError
	var appErr *apperrors.AppError
	if errors.As(err, &netErr) || errors.As(err, &apiErr) || errors.As(err, &appErr) {
		return client.Message(err)
	}
	return err.Error()
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		a.sess.Logout(ctx)
		fmt.Println("Logged out.")
		return nil
	case "feed":
		return a.showFeed(ctx)
	case "react":
		return a.react(ctx, args)
	case "post":
		return a.createPost(ctx, args)
	case "events":
		return a.events(ctx, args)
	case "join":
		return a.join(ctx, args)
	case "leave":
		return a.leave(ctx, args)
	case "profile":
		return a.profile(ctx, args)
	case "unionized":
		return a.unionized(ctx, args)
	case "theme":
		return a.theme(args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: riseup <command> [arguments]

commands:
  login <email> <password>
  register <email> <password> <name> [individual|group]
  logout
  feed
  react <event|post> <id> <care|solidarity|respect|gratitude>
  post <text>
  events [list|show <id>|create]
  join <event-id>
  leave <event-id>
  profile [show|edit]
  unionized [list|show <id>]
  theme [show|toggle]`)
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	if err := a.sess.Login(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("%s", client.LoginMessage(err))
	}
	if p := a.sess.Profile(); p != nil {
		fmt.Printf("Welcome back, %s.\n", p.Name)
	} else {
		fmt.Println("Logged in.")
	}
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: register <email> <password> <name> [individual|group]")
	}
	profileType := model.ProfileIndividual
	if len(args) > 3 && strings.EqualFold(args[3], "group") {
		profileType = model.ProfileGroup
	}
	req := model.RegisterRequest{
		Email:       args[0],
		Password:    args[1],
		Name:        args[2],
		ProfileType: profileType,
		Causes:      []string{},
	}
	if err := a.sess.Register(ctx, req); err != nil {
		// Register gets its own mapping so duplicate-email errors read as a
		// sign-in hint.
		return fmt.Errorf("%s", client.RegisterMessage(err))
	}
	fmt.Printf("Welcome to RiseUp, %s.\n", req.Name)
	return nil
}

func (a *app) showFeed(ctx context.Context) error {
	if err := a.feed.Load(ctx); err != nil {
		return err
	}
	colors := a.themes.Colors()
	items := a.feed.Items()
	if len(items) == 0 {
		fmt.Println("No posts yet. Be the first to share an update or create an event.")
		return nil
	}
	for _, item := range items {
		renderFeedItem(item, colors)
	}
	return nil
}

func (a *app) react(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: react <event|post> <id> <care|solidarity|respect|gratitude>")
	}
	target := model.TargetType(args[0])
	if !target.Valid() {
		return fmt.Errorf("target must be event or post")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[1])
	}

	if err := a.feed.Load(ctx); err != nil {
		return err
	}
	key := model.FeedKey{Type: target, ID: id}
	if err := a.feed.ToggleReaction(ctx, key, model.ReactionKind(args[2])); err != nil {
		return err
	}
	if item, ok := a.feed.Get(key); ok {
		renderFeedItem(item, a.themes.Colors())
	}
	return nil
}

func (a *app) createPost(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	post, err := a.api.CreatePost(ctx, model.PostCreateRequest{Text: text})
	if err != nil {
		return err
	}
	fmt.Printf("Posted update #%d.\n", post.ID)
	return nil
}

func (a *app) events(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "list":
		events, err := a.api.ListEvents(ctx)
		if err != nil {
			return err
		}
		colors := a.themes.Colors()
		for _, e := range events {
			fmt.Printf("%s  %s — %s (%d attending)\n",
				paint(colors.SolidarityRed, fmt.Sprintf("[event %d]", e.ID)),
				e.Title, e.EventDate.Local().Format("Mon Jan 2 15:04"), e.AttendeeCount)
		}
		return nil
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: events show <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		event, err := a.api.GetEvent(ctx, id)
		if err != nil {
			return err
		}
		colors := a.themes.Colors()
		fmt.Println(paint(colors.SolidarityRed, event.Title))
		fmt.Printf("%s · %s\n", event.EventDate.Local().Format("Mon Jan 2 15:04"), event.Location)
		fmt.Println(event.Description)
		if len(event.Tags) > 0 {
			fmt.Println(paint(colors.EarthGreen, "#"+strings.Join(event.Tags, " #")))
		}
		return nil
	case "create":
		return a.createEvent(ctx, args[1:])
	default:
		return fmt.Errorf("usage: events [list|show <id>|create]")
	}
}

func (a *app) createEvent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("events create", flag.ContinueOnError)
	title := fs.String("title", "", "event title")
	desc := fs.String("desc", "", "description")
	when := fs.String("date", "", "event date, RFC3339")
	location := fs.String("location", "", "location")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	date, err := time.Parse(time.RFC3339, *when)
	if err != nil {
		return fmt.Errorf("invalid -date, want RFC3339: %w", err)
	}

	req := model.EventCreateRequest{
		Title:       *title,
		Description: *desc,
		EventDate:   date,
		Location:    *location,
	}
	if *tags != "" {
		req.Tags = strings.Split(*tags, ",")
	}

	event, err := a.api.CreateEvent(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Created event #%d: %s\n", event.ID, event.Title)
	return nil
}

func (a *app) join(ctx context.Context, args []string) error {
	id, err := parseID(args, "join <event-id>")
	if err != nil {
		return err
	}
	resp, err := a.api.JoinEvent(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("You're in. %d attending.\n", resp.AttendanceCount)
	return nil
}

func (a *app) leave(ctx context.Context, args []string) error {
	id, err := parseID(args, "leave <event-id>")
	if err != nil {
		return err
	}
	resp, err := a.api.LeaveEvent(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Left event. %d attending.\n", resp.AttendanceCount)
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "show":
		profile, err := a.api.MyProfile(ctx)
		if err != nil {
			return err
		}
		colors := a.themes.Colors()
		fmt.Println(paint(colors.SolidarityRed, profile.Name))
		if profile.Bio != "" {
			fmt.Println(profile.Bio)
		}
		if profile.Location != "" {
			fmt.Println(paint(colors.Text.Secondary, profile.Location))
		}
		if len(profile.Causes) > 0 {
			fmt.Println(paint(colors.EarthGreen, strings.Join(profile.Causes, ", ")))
		}
		return nil
	case "edit":
		fs := flag.NewFlagSet("profile edit", flag.ContinueOnError)
		name := fs.String("name", "", "display name")
		bio := fs.String("bio", "", "bio")
		location := fs.String("location", "", "location")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		req := model.ProfileUpdateRequest{}
		if *name != "" {
			req.Name = name
		}
		if *bio != "" {
			req.Bio = bio
		}
		if *location != "" {
			req.Location = location
		}
		profile, err := a.api.UpdateMyProfile(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("Profile updated: %s\n", profile.Name)
		return nil
	default:
		return fmt.Errorf("usage: profile [show|edit]")
	}
}

func (a *app) unionized(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "list":
		fs := flag.NewFlagSet("unionized list", flag.ContinueOnError)
		location := fs.String("location", "", "filter by location")
		employment := fs.String("type", "", "employment type filter")
		union := fs.String("union", "", "union status filter")
		if err := fs.Parse(args); err != nil {
			return err
		}
		postings, err := a.api.ListPostings(ctx, model.FairWorkFilter{
			Location:       *location,
			EmploymentType: model.EmploymentType(*employment),
			UnionStatus:    model.UnionStatus(*union),
		})
		if err != nil {
			return err
		}
		colors := a.themes.Colors()
		for _, p := range postings {
			fmt.Printf("%s  %s @ %s — %s (%s, %s)\n",
				paint(colors.SunYellow, fmt.Sprintf("[%d]", p.ID)),
				p.Title, p.Organization, p.WageText, p.EmploymentType, p.UnionStatus)
		}
		return nil
	case "show":
		id, err := parseID(args, "unionized show <id>")
		if err != nil {
			return err
		}
		p, err := a.api.GetPosting(ctx, id)
		if err != nil {
			return err
		}
		colors := a.themes.Colors()
		fmt.Println(paint(colors.SolidarityRed, p.Title))
		fmt.Printf("%s · %s · %s\n", p.Organization, p.Location, p.WageText)
		fmt.Println(p.Description)
		if p.WorkerNotes != "" {
			fmt.Println(paint(colors.EarthGreen, "Worker notes: "+p.WorkerNotes))
		}
		return nil
	default:
		return fmt.Errorf("usage: unionized [list|show <id>]")
	}
}

func (a *app) theme(args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "show":
		fmt.Printf("Theme: %s\n", a.themes.Mode())
		return nil
	case "toggle":
		mode, err := a.themes.Toggle()
		if err != nil {
			return err
		}
		fmt.Printf("Theme: %s\n", mode)
		return nil
	default:
		return fmt.Errorf("usage: theme [show|toggle]")
	}
}

func parseID(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
