// Package render turns normalized GitHub records into README SVG cards.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	svg "github.com/ajstarks/svgo"
	"github.com/dustin/go-humanize"

	"github.com/andywolf/readmecards/internal/github"
	"github.com/andywolf/readmecards/internal/logging"
	"github.com/andywolf/readmecards/internal/textwidth"
)

// Issue card geometry in pixels.
const (
	IssueCardWidth  = 800
	IssueCardHeight = 120

	padding   = 16
	iconSize  = 24
	titleX    = padding + iconSize + 8
	titleY    = 34
	titleSize = 16

	chipY      = 48
	chipHeight = 20
	chipSize   = 12
	chipGap    = 5

	footerY        = 104
	footerSize     = 12
	footerIconSize = 16
	footerIconGap  = 4
	footerGap      = 12
	progressWidth  = 60
	progressHeight = 8

	avatarSize = 28
	avatarStep = 20
	maxAvatars = 8

	maxBranchWidth = 180
	ellipsis       = "…"
)

// Renderer draws issue cards.
type Renderer struct {
	avatars    AvatarFetcher
	logger     logging.Logger
	nowFunc    func() time.Time
	rightChips bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAvatarFetcher enables contributor avatars. Without one the avatar strip
// is left out.
func WithAvatarFetcher(f AvatarFetcher) Option {
	return func(r *Renderer) {
		r.avatars = f
	}
}

// WithLogger sets the logger used for skipped avatars.
func WithLogger(l logging.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithNowFunc sets the clock used for relative timestamps.
func WithNowFunc(fn func() time.Time) Option {
	return func(r *Renderer) {
		r.nowFunc = fn
	}
}

// WithRightAlignedLabels lays label chips out right to left, ending at the
// avatar strip.
func WithRightAlignedLabels(right bool) Option {
	return func(r *Renderer) {
		r.rightChips = right
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger:  logging.Discard(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IssueSVG renders issue as an 800x120 card. Avatars that fail to download
// are logged and left out.
func (r *Renderer) IssueSVG(ctx context.Context, issue github.Issue) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(IssueCardWidth, IssueCardHeight)
	canvas.Style("text/css", stylesheet)
	canvas.Roundrect(1, 1, IssueCardWidth-2, IssueCardHeight-2, 6, 6, `class="card"`)

	icon, iconClass := issueIcon(issue)
	canvas.Path(icon, fmt.Sprintf(`transform="translate(%d,%d)"`, padding, padding), `class="`+iconClass+`"`)

	avatars := r.fetchAvatars(ctx, issue.Contributors)
	stripLeft := IssueCardWidth - padding
	if len(avatars) > 0 {
		stripLeft = avatarX(0, len(avatars))
	}

	drawTitle(canvas, issue, stripLeft-footerGap)

	chipLimit := stripLeft - footerGap
	for _, c := range layoutChips(issue.Labels, titleX, chipLimit, r.rightChips) {
		canvas.Roundrect(c.X, chipY, c.Width, chipHeight, chipHeight/2, chipHeight/2,
			`class="labelBg"`, `fill="`+c.Fill+`"`)
		canvas.Text(c.X+c.Width/2, chipY+14, c.Name, `class="chip"`, `fill="`+c.TextColor+`"`)
	}

	right := footerLayout(issue)
	footerLeft := IssueCardWidth - padding
	for _, item := range right {
		x := item.X
		if item.Icon != "" {
			canvas.Path(item.Icon,
				fmt.Sprintf(`transform="translate(%d,%d)"`, x, footerY-12),
				`class="`+item.IconClass+`"`)
			x += footerIconSize + footerIconGap
		}
		canvas.Text(x, footerY, item.Text, `class="`+item.TextClass+`"`)
		footerLeft = item.X
	}

	r.drawFooterLeft(canvas, issue, footerLeft-footerGap)
	drawAvatars(canvas, avatars)

	canvas.End()
	return buf.String()
}

// issueIcon picks the header icon: bug, open, completed for closed features,
// or skipped for any other closed issue. The color class follows the state only.
func issueIcon(issue github.Issue) (path, class string) {
	class = "icon-open"
	if issue.State == github.IssueStateClosed {
		class = "icon-closed"
	}
	switch {
	case issue.Type == github.IssueTypeBug:
		return iconBug24, class
	case issue.State != github.IssueStateClosed:
		return iconIssueOpen24, class
	case issue.Type == github.IssueTypeFeature:
		return iconIssueCompleted24, class
	default:
		return iconIssueSkipped24, class
	}
}

// drawTitle writes the title, truncated to end before limit, followed by the
// muted issue number.
func drawTitle(canvas *svg.SVG, issue github.Issue, limit int) {
	number := "#" + strconv.Itoa(issue.Number)
	numberWidth := textwidth.EstimateWidth(number, titleSize)
	title := textwidth.Truncate(issue.Title, titleSize, limit-titleX-numberWidth-6, ellipsis)

	canvas.Text(titleX, titleY, title, `class="title"`)
	canvas.Text(titleX+textwidth.EstimateWidth(title, titleSize)+6, titleY, number, `class="title-muted"`)
}

type chip struct {
	Name      string
	Fill      string
	TextColor string
	X         int
	Width     int
}

// layoutChips places label chips between start and limit. Chips that do not
// fit are dropped.
func layoutChips(labels []github.Label, start, limit int, rightAligned bool) []chip {
	chips := make([]chip, 0, len(labels))
	if rightAligned {
		cursor := limit
		for i := len(labels) - 1; i >= 0; i-- {
			c := newChip(labels[i])
			if cursor-c.Width < start {
				break
			}
			c.X = cursor - c.Width
			cursor = c.X - chipGap
			chips = append(chips, c)
		}
		return chips
	}

	cursor := start
	for _, l := range labels {
		c := newChip(l)
		if cursor+c.Width > limit {
			break
		}
		c.X = cursor
		cursor += c.Width + chipGap
		chips = append(chips, c)
	}
	return chips
}

func newChip(l github.Label) chip {
	fill, text := chipColors(l.Color)
	return chip{
		Name:      l.Name,
		Fill:      fill,
		TextColor: text,
		Width:     textwidth.EstimateWidth(l.Name, chipSize) + 15,
	}
}

type footerItem struct {
	Text      string
	TextClass string
	Icon      string
	IconClass string
	X         int
	Width     int
}

// footerLayout places the right-hand footer from the right edge leftwards:
// deletions, additions, commits, then the linked pull request or branch.
func footerLayout(issue github.Issue) []footerItem {
	var items []footerItem
	if s := issue.Stats; s != nil {
		items = append(items,
			footerItem{Text: fmt.Sprintf("-%d", s.Deletions), TextClass: "deletions"},
			footerItem{Text: fmt.Sprintf("+%d", s.Additions), TextClass: "additions"},
			footerItem{Text: strconv.Itoa(s.Commits), TextClass: "muted", Icon: iconCommit16, IconClass: "icon-muted"},
		)
	}

	switch {
	case issue.LinkedPR != nil:
		icon, class := prIcon(issue.LinkedPR.State)
		items = append(items, footerItem{
			Text:      "#" + strconv.Itoa(issue.LinkedPR.Number),
			TextClass: "muted",
			Icon:      icon,
			IconClass: class,
		})
	case issue.LinkedBranch != "":
		items = append(items, footerItem{
			Text:      textwidth.Truncate(issue.LinkedBranch, footerSize, maxBranchWidth, ellipsis),
			TextClass: "muted",
			Icon:      iconBranch16,
			IconClass: "icon-muted",
		})
	}

	cursor := IssueCardWidth - padding
	for i := range items {
		w := textwidth.EstimateWidth(items[i].Text, footerSize)
		if items[i].Icon != "" {
			w += footerIconSize + footerIconGap
		}
		items[i].Width = w
		items[i].X = cursor - w
		cursor = items[i].X - footerGap
	}
	return items
}

func prIcon(state github.PRState) (path, class string) {
	switch state {
	case github.PRStateMerged:
		return iconMerged16, "icon-completed"
	case github.PRStateClosed:
		return iconPullRequestClosed16, "icon-danger"
	default:
		return iconPullRequest16, "icon-open"
	}
}

// drawFooterLeft writes comments, task progress and the last interaction,
// keeping clear of limit.
func (r *Renderer) drawFooterLeft(canvas *svg.SVG, issue github.Issue, limit int) {
	x := padding

	comments := strconv.Itoa(issue.CommentCount)
	canvas.Path(iconComment16, fmt.Sprintf(`transform="translate(%d,%d)"`, x, footerY-12), `class="icon-muted"`)
	x += footerIconSize + footerIconGap
	canvas.Text(x, footerY, comments, `class="muted"`)
	x += textwidth.EstimateWidth(comments, footerSize) + footerGap

	if issue.TotalTasks > 0 {
		done := issue.CompletedTasks * progressWidth / issue.TotalTasks
		canvas.Roundrect(x, footerY-progressHeight, progressWidth, progressHeight, 4, 4, `class="progress-bg"`)
		if done > 0 {
			canvas.Roundrect(x, footerY-progressHeight, done, progressHeight, 4, 4, `class="progress-fill"`)
		}
		x += progressWidth + footerIconGap
		tasks := fmt.Sprintf("%d/%d", issue.CompletedTasks, issue.TotalTasks)
		canvas.Text(x, footerY, tasks, `class="muted"`)
		x += textwidth.EstimateWidth(tasks, footerSize) + footerGap
	}

	activity := textwidth.Truncate(r.interactionText(issue.LastInteraction), footerSize, limit-x, ellipsis)
	if activity != ellipsis && textwidth.EstimateWidth(activity, footerSize) <= limit-x {
		canvas.Text(x, footerY, activity, `class="muted"`)
	}
}

// interactionText reads like "@bob commented 3 days ago".
func (r *Renderer) interactionText(in github.Interaction) string {
	user := in.User
	if user == "" {
		user = "ghost"
	}
	if in.At.IsZero() {
		return fmt.Sprintf("@%s %s", user, in.Kind)
	}
	return fmt.Sprintf("@%s %s %s", user, in.Kind, humanize.RelTime(in.At, r.nowFunc(), "ago", "from now"))
}

type avatar struct {
	Login   string
	DataURI string
}

func (r *Renderer) fetchAvatars(ctx context.Context, contributors []github.Contributor) []avatar {
	if r.avatars == nil {
		return nil
	}
	// newest contributors sit against the edge
	if len(contributors) > maxAvatars {
		contributors = contributors[len(contributors)-maxAvatars:]
	}

	avatars := make([]avatar, 0, len(contributors))
	for _, c := range contributors {
		if c.AvatarURL == "" {
			continue
		}
		uri, err := r.avatars.FetchAvatar(ctx, c.AvatarURL)
		if err != nil {
			r.logger.Warningf("Skipping avatar of %s: %v", c.Login, err)
			continue
		}
		avatars = append(avatars, avatar{Login: c.Login, DataURI: uri})
	}
	return avatars
}

// avatarX is the left edge of the i-th of n avatars. The last one sits
// against the right padding.
func avatarX(i, n int) int {
	return IssueCardWidth - padding - avatarSize - (n-1-i)*avatarStep
}

// drawAvatars draws left to right so that later contributors overlap earlier
// ones.
func drawAvatars(canvas *svg.SVG, avatars []avatar) {
	if len(avatars) == 0 {
		return
	}
	r := avatarSize / 2

	canvas.Def()
	for i := range avatars {
		canvas.ClipPath(fmt.Sprintf(`id="avatar-clip-%d"`, i))
		canvas.Circle(avatarX(i, len(avatars))+r, padding+r, r)
		canvas.ClipEnd()
	}
	canvas.DefEnd()

	for i, a := range avatars {
		x := avatarX(i, len(avatars))
		canvas.Image(x, padding, avatarSize, avatarSize, a.DataURI,
			fmt.Sprintf(`clip-path="url(#avatar-clip-%d)"`, i))
		canvas.Circle(x+r, padding+r, r, `class="avatar-ring"`)
	}
}
