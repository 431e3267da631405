package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cipher-box/internal/crypto"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/internal/notify"
	"github.com/MKhiriev/go-cipher-box/models"
)

type appMode int

const (
	modeMain appMode = iota
	modePassphrase
)

type appModel struct {
	ctx    context.Context
	cipher crypto.CipherService
	center *notify.Center
	log    *logger.Logger

	keyInput    textinput.Model
	ivInput     textinput.Model
	encryptArea textarea.Model
	decryptArea textarea.Model

	focus		fieldID
	tooltip		tooltipModel
	mode		appMode
	passInput	textinput.Model
	busy		bool
	width		int
}

func newAppModel(ctx context.Context, cipher crypto.CipherService, center *notify.Center, tooltip tooltipModel, log *logger.Logger) appModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "hex key (32/48/64 digits)"
	keyInput.Width = 68

	ivInput := textinput.New()
	ivInput.Placeholder = "hex IV"
	ivInput.Width = 68

	encryptArea := textarea.New()
	encryptArea.Placeholder = "plaintext to encrypt"
	encryptArea.SetHeight(5)
	encryptArea.ShowLineNumbers = false

	decryptArea := textarea.New()
	decryptArea.Placeholder = "hex ciphertext to decrypt"
	decryptArea.SetHeight(5)
	decryptArea.ShowLineNumbers = false

	passInput := textinput.New()
	passInput.Placeholder = "passphrase"
	passInput.EchoMode = textinput.EchoPassword
	passInput.Width = 40

	keyInput.Focus()

	return appModel{
		ctx:         ctx,
		cipher:      cipher,
		center:      center,
		log:         log,
		keyInput:    keyInput,
		ivInput:     ivInput,
		encryptArea: encryptArea,
		decryptArea: decryptArea,
		focus:       fieldKey,
		tooltip:     tooltip,
		passInput:   passInput,
	}
}

func (m appModel) Init() tea.Cmd {
	// Init cannot return a changed model, so arm the timer against the
	// sequence number the stored model already carries.
	return m.tooltip.scheduleShow(fieldKey)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 8
		if w > 20 {
			m.encryptArea.SetWidth(w)
			m.decryptArea.SetWidth(w)
		}
		return m, nil

	case tooltipShowMsg:
		m.tooltip.handleShow(msg)
		return m, nil
	case tooltipHideMsg:
		m.tooltip.handleHide(msg)
		return m, nil

	case notifyEventMsg:
		// The center is the source of truth; the event only forces a
		// repaint.
		return m, nil

	case keyGeneratedMsg:
		m.busy = false
		if msg.err != nil {
			m.center.ShowError(msg.err.Error())
			return m, nil
		}
		m.applyOutput(models.OperationOutput{Kind: models.OutputKeyGenerated, Material: msg.material})
		m.center.ShowSuccess("Key and IV generated")
		return m, nil

	case keyDerivedMsg:
		m.busy = false
		m.mode = modeMain
		m.passInput.SetValue("")
		if msg.err != nil {
			m.center.ShowError(msg.err.Error())
			return m, nil
		}
		m.applyOutput(models.OperationOutput{Kind: models.OutputKeyGenerated, Material: msg.material})
		m.center.ShowSuccess("Key and IV derived from passphrase")
		m.center.ShowInfo("Derivation salt: " + msg.material.SaltHex)
		return m, nil

	case encryptDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.center.ShowError(msg.err.Error())
			return m, nil
		}
		m.applyOutput(models.OperationOutput{Kind: models.OutputEncrypted, Value: msg.ciphertext})
		m.center.ShowSuccess("Encrypted. Result placed in the decrypt field")
		return m, nil

	case decryptDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.center.ShowError(msg.err.Error())
			return m, nil
		}
		m.applyOutput(models.OperationOutput{Kind: models.OutputDecrypted, Value: msg.plaintext})
		m.center.ShowSuccess("Decrypted. Result placed in the encrypt field")
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.center.ShowWarning("Clipboard unavailable: " + msg.err.Error())
		} else {
			m.center.ShowSuccess(fmt.Sprintf("Copied %s field to clipboard", msg.field))
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modePassphrase {
			return m.updatePassphrase(msg)
		}
		return m.updateMain(msg)
	}

	return m.updateFocused(msg)
}

func (m appModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.tab):
		return m.cycleFocus(1)
	case key.Matches(msg, keys.backtab):
		return m.cycleFocus(-1)

	case key.Matches(msg, keys.generate):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdGenerate()

	case key.Matches(msg, keys.derive):
		if m.busy {
			return m, nil
		}
		m.mode = modePassphrase
		return m, tea.Batch(m.passInput.Focus(), m.tooltip.focusLost())

	case key.Matches(msg, keys.encrypt):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdEncrypt(m.fieldValue(fieldEncrypt), m.keyInput.Value(), m.ivInput.Value())

	case key.Matches(msg, keys.decrypt):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDecrypt(m.fieldValue(fieldDecrypt), m.keyInput.Value(), m.ivInput.Value())

	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.focus, m.fieldValue(m.focus))

	case key.Matches(msg, keys.dismiss):
		// Dismiss the most recent notification early.
		if active := m.center.Active(); len(active) > 0 {
			m.center.RemoveMessage(active[len(active)-1].ID)
		}
		return m, nil
	}

	if msg.Paste {
		// Pasted breaks can butt against existing ones, so the run
		// collapse happens right after the paste lands, not on blur.
		msg.Runes = []rune(sanitizePaste(string(msg.Runes)))
		model, cmd := m.updateFocused(msg)
		pasted := model.(appModel)
		pasted.normalizeArea(pasted.focus)
		return pasted, cmd
	}
	return m.updateFocused(msg)
}

func (m appModel) updatePassphrase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.mode = modeMain
		m.passInput.SetValue("")
		m.passInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.busy = true
		m.passInput.Blur()
		return m, m.cmdDerive(m.passInput.Value())
	}

	var cmd tea.Cmd
	m.passInput, cmd = m.passInput.Update(msg)
	return m, cmd
}

// updateFocused delegates a message to whichever field holds focus.
func (m appModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case fieldIV:
		m.ivInput, cmd = m.ivInput.Update(msg)
	case fieldEncrypt:
		m.encryptArea, cmd = m.encryptArea.Update(msg)
	case fieldDecrypt:
		m.decryptArea, cmd = m.decryptArea.Update(msg)
	}
	return m, cmd
}

func (m appModel) cycleFocus(dir int) (tea.Model, tea.Cmd) {
	m.blurField(m.focus)
	m.normalizeArea(m.focus)

	next := fieldID((int(m.focus) + dir + int(fieldCount)) % int(fieldCount))
	m.focus = next

	cmds := []tea.Cmd{m.focusField(next), m.tooltip.focusChanged(next)}
	return m, tea.Batch(cmds...)
}

func (m *appModel) blurField(f fieldID) {
	switch f {
	case fieldKey:
		m.keyInput.Blur()
	case fieldIV:
		m.ivInput.Blur()
	case fieldEncrypt:
		m.encryptArea.Blur()
	case fieldDecrypt:
		m.decryptArea.Blur()
	}
}

func (m *appModel) focusField(f fieldID) tea.Cmd {
	switch f {
	case fieldKey:
		return m.keyInput.Focus()
	case fieldIV:
		return m.ivInput.Focus()
	case fieldEncrypt:
		return m.encryptArea.Focus()
	case fieldDecrypt:
		return m.decryptArea.Focus()
	}
	return nil
}

// normalizeArea collapses excess blank lines in a payload area when focus
// leaves it, keeping the caret on the same logical spot.
func (m *appModel) normalizeArea(f fieldID) {
	var ta *textarea.Model
	switch f {
	case fieldEncrypt:
		ta = &m.encryptArea
	case fieldDecrypt:
		ta = &m.decryptArea
	default:
		return
	}

	value := ta.Value()
	cursor := areaCursorOffset(ta)
	normalized, newCursor := collapseBreaks(value, cursor)
	if normalized == value {
		return
	}

	ta.SetValue(normalized)
	moveAreaCursor(ta, newCursor)
}

func (m appModel) fieldValue(f fieldID) string {
	switch f {
	case fieldKey:
		return m.keyInput.Value()
	case fieldIV:
		return m.ivInput.Value()
	case fieldEncrypt:
		return normalizeLineBreaks(m.encryptArea.Value())
	case fieldDecrypt:
		return normalizeLineBreaks(m.decryptArea.Value())
	default:
		return ""
	}
}

func (m *appModel) setFieldValue(f fieldID, v string) {
	switch f {
	case fieldKey:
		m.keyInput.SetValue(v)
	case fieldIV:
		m.ivInput.SetValue(v)
	case fieldEncrypt:
		m.encryptArea.SetValue(v)
	case fieldDecrypt:
		m.decryptArea.SetValue(v)
	}
}

// applyOutput routes an operation result into its destination fields.
func (m *appModel) applyOutput(out models.OperationOutput) {
	for _, f := range routeOutput(out) {
		switch f {
		case fieldKey:
			m.setFieldValue(fieldKey, out.Material.KeyHex)
		case fieldIV:
			m.setFieldValue(fieldIV, out.Material.IVHex)
		default:
			m.setFieldValue(f, out.Value)
		}
	}
}

func (m appModel) cmdGenerate() tea.Cmd {
	cipher := m.cipher
	return func() tea.Msg {
		material, err := cipher.GenerateKeyAndIV()
		return keyGeneratedMsg{material: material, err: err}
	}
}

func (m appModel) cmdDerive(passphrase string) tea.Cmd {
	cipher := m.cipher
	return func() tea.Msg {
		material, err := cipher.DeriveKeyAndIV(passphrase, "")
		return keyDerivedMsg{material: material, err: err}
	}
}

func (m appModel) cmdEncrypt(plaintext, keyHex, ivHex string) tea.Cmd {
	ctx, cipher := m.ctx, m.cipher
	return func() tea.Msg {
		hexCiphertext, err := cipher.Encrypt(ctx, plaintext, keyHex, ivHex)
		return encryptDoneMsg{ciphertext: hexCiphertext, err: err}
	}
}

func (m appModel) cmdDecrypt(ciphertextHex, keyHex, ivHex string) tea.Cmd {
	ctx, cipher := m.ctx, m.cipher
	return func() tea.Msg {
		plaintext, err := cipher.Decrypt(ctx, ciphertextHex, keyHex, ivHex)
		return decryptDoneMsg{plaintext: plaintext, err: err}
	}
}

func (m appModel) cmdCopy(f fieldID, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{field: f, err: clipboard.WriteAll(value)}
	}
}
