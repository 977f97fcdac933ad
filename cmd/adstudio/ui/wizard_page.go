package ui

import (
	"fmt"
	"strings"
	"time"

	"adstudio/internal/config"
	"adstudio/internal/wizard"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Wizard messages. Every delayed message carries the run id it was
// scheduled under; a cancelled or restarted wizard bumps the id, so late
// ticks from an abandoned run are dropped instead of mutating state.
type (
	urlImportedMsg struct{ runID int }
	genTickMsg     struct{ runID, idx int }
	setupDoneMsg   struct{ runID int }
)

// SetupModel walks the four-step setup flow: products, brand brief,
// platform config, review & generate. All "work" is simulated with fixed
// delays and canned results from the wizard package.
type SetupModel struct {
	session *wizard.Session
	step    wizard.Step

	urlInput    textinput.Model
	importing   bool
	spinner     spinner.Model
	brandInputs [3]textinput.Model
	brandFocus  int
	platformRow int

	generating  bool
	genIdx      int // index of the last applied generation step, -1 before the first
	progressBar progress.Model

	runID  int
	styles Styles
	width  int
	height int
}

var platformKeys = []string{"meta", "google", "tiktok", "pinterest"}

// NewSetupModel builds a fresh wizard. The brand step is prefilled from
// config so a configured store only has to confirm it.
func NewSetupModel(brand config.BrandConfig, styles Styles) SetupModel {
	url := textinput.New()
	url.Placeholder = "https://yourstore.com/products/..."
	url.CharLimit = 200
	url.Width = 56
	url.Focus()

	name := textinput.New()
	name.Placeholder = "Brand name"
	name.SetValue(brand.Name)
	name.Width = 40
	name.Focus()

	tone := textinput.New()
	tone.Placeholder = "Tone (e.g. friendly-professional)"
	tone.SetValue(brand.Tone)
	tone.Width = 40

	audience := textinput.New()
	audience.Placeholder = "Target audience"
	audience.SetValue(brand.Audience)
	audience.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SetupModel{
		session:     wizard.NewSession(),
		urlInput:    url,
		spinner:     sp,
		brandInputs: [3]textinput.Model{name, tone, audience},
		progressBar: progress.New(progress.WithDefaultGradient()),
		genIdx:      -1,
		styles:      styles,
	}
}

// Session exposes the staged wizard state.
func (m SetupModel) Session() *wizard.Session { return m.session }

// Step returns the current wizard screen.
func (m SetupModel) Step() wizard.Step { return m.step }

// Generating reports whether the progress animation is running.
func (m SetupModel) Generating() bool { return m.generating }

// Percent returns the last displayed progress percentage.
func (m SetupModel) Percent() int {
	if m.genIdx < 0 {
		return 0
	}
	return wizard.GenerationScript[m.genIdx].Percent
}

// Cancel invalidates any pending timers. The app calls this whenever the
// user navigates away mid-simulation; outstanding messages then no-op.
func (m *SetupModel) Cancel() {
	m.runID++
	m.importing = false
	m.generating = false
	m.genIdx = -1
}

// SetSize stores the drawable area.
func (m *SetupModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.progressBar.Width = min(w-8, 60)
}

// TypingInText reports whether a text input currently has focus, so the
// app does not steal letter keys for navigation.
func (m SetupModel) TypingInText() bool {
	return m.step == wizard.StepProducts || m.step == wizard.StepBrand
}

func (m SetupModel) stepComplete() bool {
	switch m.step {
	case wizard.StepProducts:
		return len(m.session.Products) > 0
	case wizard.StepBrand:
		return m.session.BrandComplete()
	case wizard.StepConfig:
		return len(m.session.SelectedPlatforms()) > 0
	}
	return false
}

// Update handles wizard input and the simulation messages.
func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case urlImportedMsg:
		if msg.runID != m.runID || !m.importing {
			return m, nil
		}
		m.importing = false
		m.session.AddByURL(m.urlInput.Value())
		m.urlInput.SetValue("")
		return m, nil

	case genTickMsg:
		if msg.runID != m.runID || !m.generating {
			return m, nil
		}
		m.genIdx = msg.idx
		if m.genIdx >= len(wizard.GenerationScript)-1 {
			// Hold the finished bar briefly, then route home.
			runID := m.runID
			return m, tea.Tick(wizard.StepInterval, func(time.Time) tea.Msg {
				return setupDoneMsg{runID: runID}
			})
		}
		runID, next := m.runID, m.genIdx+1
		return m, tea.Tick(wizard.StepInterval, func(time.Time) tea.Msg {
			return genTickMsg{runID: runID, idx: next}
		})

	case spinner.TickMsg:
		if !m.importing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m SetupModel) handleKey(key tea.KeyMsg) (SetupModel, tea.Cmd) {
	if m.generating {
		// The animation has no cancel or error branch; it always runs to
		// completion. Only the app-level quit interrupts it.
		return m, nil
	}

	switch key.String() {
	case "tab":
		if m.stepComplete() && m.step < wizard.StepGenerate {
			m.step++
			return m, nil
		}
	case "shift+tab":
		if m.step > wizard.StepProducts {
			m.step--
			return m, nil
		}
	}

	switch m.step {
	case wizard.StepProducts:
		return m.handleProductsKey(key)
	case wizard.StepBrand:
		return m.handleBrandKey(key)
	case wizard.StepConfig:
		return m.handleConfigKey(key)
	case wizard.StepGenerate:
		return m.handleGenerateKey(key)
	}
	return m, nil
}

func (m SetupModel) handleProductsKey(key tea.KeyMsg) (SetupModel, tea.Cmd) {
	switch key.String() {
	case "enter":
		if !m.importing && wizard.ValidURL(m.urlInput.Value()) {
			m.importing = true
			runID := m.runID
			return m, tea.Batch(
				m.spinner.Tick,
				tea.Tick(wizard.URLImportDelay, func(time.Time) tea.Msg {
					return urlImportedMsg{runID: runID}
				}),
			)
		}
		return m, nil
	case "ctrl+u":
		// "Upload a CSV": no file is read, the constant set is appended.
		m.session.AddCSV()
		return m, nil
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(key)
	return m, cmd
}

func (m SetupModel) handleBrandKey(key tea.KeyMsg) (SetupModel, tea.Cmd) {
	switch key.String() {
	case "down", "enter":
		m.brandInputs[m.brandFocus].Blur()
		m.brandFocus = (m.brandFocus + 1) % len(m.brandInputs)
		m.brandInputs[m.brandFocus].Focus()
		m.syncBrand()
		return m, nil
	case "up":
		m.brandInputs[m.brandFocus].Blur()
		m.brandFocus = (m.brandFocus + len(m.brandInputs) - 1) % len(m.brandInputs)
		m.brandInputs[m.brandFocus].Focus()
		m.syncBrand()
		return m, nil
	}
	var cmd tea.Cmd
	m.brandInputs[m.brandFocus], cmd = m.brandInputs[m.brandFocus].Update(key)
	m.syncBrand()
	return m, cmd
}

func (m *SetupModel) syncBrand() {
	m.session.BrandName = m.brandInputs[0].Value()
	m.session.BrandTone = m.brandInputs[1].Value()
	m.session.Audience = m.brandInputs[2].Value()
}

func (m SetupModel) handleConfigKey(key tea.KeyMsg) (SetupModel, tea.Cmd) {
	switch key.String() {
	case "j", "down":
		if m.platformRow < len(platformKeys)-1 {
			m.platformRow++
		}
	case "k", "up":
		if m.platformRow > 0 {
			m.platformRow--
		}
	case " ", "enter":
		k := platformKeys[m.platformRow]
		m.session.Platforms[k] = !m.session.Platforms[k]
	case "f":
		if m.session.Format == "csv" {
			m.session.Format = "json"
		} else {
			m.session.Format = "csv"
		}
	}
	return m, nil
}

func (m SetupModel) handleGenerateKey(key tea.KeyMsg) (SetupModel, tea.Cmd) {
	if key.String() != "enter" && key.String() != "g" {
		return m, nil
	}
	if !m.session.ReadyToGenerate() {
		return m, nil
	}
	m.generating = true
	m.genIdx = -1
	runID := m.runID
	return m, tea.Tick(wizard.StepInterval, func(time.Time) tea.Msg {
		return genTickMsg{runID: runID, idx: 0}
	})
}

// View renders the current step.
func (m SetupModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.stepHeader())
	sb.WriteString("\n\n")

	switch m.step {
	case wizard.StepProducts:
		sb.WriteString(m.viewProducts())
	case wizard.StepBrand:
		sb.WriteString(m.viewBrand())
	case wizard.StepConfig:
		sb.WriteString(m.viewConfig())
	case wizard.StepGenerate:
		sb.WriteString(m.viewGenerate())
	}
	return sb.String()
}

func (m SetupModel) stepHeader() string {
	parts := make([]string, 0, wizard.StepCount)
	for i := 0; i < wizard.StepCount; i++ {
		s := wizard.Step(i)
		label := fmt.Sprintf("%d. %s", i+1, s.Title())
		style := m.styles.Tab
		if s == m.step {
			style = m.styles.TabActive
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, m.styles.Muted.Render(" → "))
}

func (m SetupModel) viewProducts() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Add products to generate for"))
	sb.WriteString("\n")
	sb.WriteString(m.urlInput.View())
	sb.WriteString("\n")
	if m.importing {
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Info.Render(" Importing product..."))
	} else {
		sb.WriteString(m.styles.Muted.Render("enter add by URL · ctrl+u upload CSV · tab next step"))
	}
	sb.WriteString("\n\n")

	if len(m.session.Products) == 0 {
		sb.WriteString(m.styles.Muted.Render("No products yet."))
		sb.WriteString("\n")
		return sb.String()
	}

	t := NewSimpleTable(fmt.Sprintf("Staged products (%d)", len(m.session.Products)), "Name", "Price", "Category", "Source")
	for _, p := range m.session.Products {
		t.AddRow(p.Name, p.Price, p.Category, p.Source)
	}
	sb.WriteString(t.View(m.styles))
	return sb.String()
}

func (m SetupModel) viewBrand() string {
	labels := [3]string{"Brand name", "Tone", "Audience"}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Brand brief"))
	sb.WriteString("\n")
	for i, in := range m.brandInputs {
		style := m.styles.Muted
		if i == m.brandFocus {
			style = m.styles.Bold
		}
		sb.WriteString(style.Render(labels[i]))
		sb.WriteString("\n")
		sb.WriteString(in.View())
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.styles.Muted.Render("up/down switch field · tab next step"))
	return sb.String()
}

func (m SetupModel) viewConfig() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Platforms & output"))
	sb.WriteString("\n")
	for i, k := range platformKeys {
		marker := "[ ]"
		if m.session.Platforms[k] {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, k)
		if i == m.platformRow {
			line = m.styles.CardSelected.Render(line)
		} else {
			line = m.styles.Body.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render(fmt.Sprintf("Output format: %s", m.session.Format)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("space toggle platform · f toggle format · tab next step"))
	return sb.String()
}

func (m SetupModel) viewGenerate() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Review & generate"))
	sb.WriteString("\n")

	summary := []string{
		fmt.Sprintf("Products:  %d staged", len(m.session.Products)),
		fmt.Sprintf("Brand:     %s (%s)", m.session.BrandName, m.session.BrandTone),
		fmt.Sprintf("Platforms: %s", strings.Join(m.session.SelectedPlatforms(), ", ")),
		fmt.Sprintf("Output:    %s", m.session.Format),
	}
	sb.WriteString(m.styles.Body.Render(strings.Join(summary, "\n")))
	sb.WriteString("\n\n")

	if m.generating {
		msg := "Starting..."
		if m.genIdx >= 0 {
			msg = wizard.GenerationScript[m.genIdx].Message
		}
		sb.WriteString(m.progressBar.ViewAs(float64(m.Percent()) / 100))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Info.Render(fmt.Sprintf("%s (%d%%)", msg, m.Percent())))
		return sb.String()
	}

	if m.session.ReadyToGenerate() {
		sb.WriteString(m.styles.Success.Render("enter to generate"))
	} else {
		sb.WriteString(m.styles.Warning.Render("Earlier steps are incomplete."))
	}
	return sb.String()
}

