package tui

import (
	"strings"
)

func (m appModel) View() string {
	if m.mode == modePassphrase {
		return appStyle.Render(m.viewPassphrase())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cipher-box"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	b.WriteString(m.viewLabel(fieldKey, "Key"))
	b.WriteString(m.keyInput.View())
	b.WriteString("\n")
	b.WriteString(m.viewLabel(fieldIV, "IV "))
	b.WriteString(m.ivInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.viewLabel(fieldEncrypt, "Encrypt (plaintext in, decrypted out)"))
	b.WriteString("\n")
	b.WriteString(m.encryptArea.View())
	b.WriteString("\n\n")

	b.WriteString(m.viewLabel(fieldDecrypt, "Decrypt (hex ciphertext in, encrypted out)"))
	b.WriteString("\n")
	b.WriteString(m.decryptArea.View())
	b.WriteString("\n")

	if messages := renderMessages(m.center.Active(), m.width-4); messages != "" {
		b.WriteString("\n")
		b.WriteString(messages)
	}

	if tooltip := m.tooltip.View(); tooltip != "" {
		b.WriteString("\n")
		b.WriteString(tooltip)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · ctrl+g generate · ctrl+p derive · ctrl+e encrypt · ctrl+d decrypt · ctrl+y copy · ctrl+x dismiss · ctrl+c quit"))

	return appStyle.Render(b.String())
}

func (m appModel) viewLabel(f fieldID, label string) string {
	if m.focus == f {
		return focusedStyle.Render(label) + " "
	}
	return labelStyle.Render(label) + " "
}

func (m appModel) viewPassphrase() string {
	content := titleStyle.Render("Derive key and IV") + "\n\n" +
		m.passInput.View() + "\n\n" +
		helpStyle.Render("enter derive · esc cancel")
	return passphraseBox.Render(content)
}
