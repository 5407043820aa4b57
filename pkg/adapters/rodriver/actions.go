package rodriver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"

	"github.com/osvk/uireplay/pkg/domain"
)

// frameDepth bounds the recursive iframe scan. The plugin panel sits two
// frames deep (editor frame > plugin frame).
const frameDepth = 3

// Click locates the element and clicks it via script, which is how the
// capture side saw the interaction happen (plugin buttons sit in iframes
// where trusted input clicks are flaky).
func (d *Driver) Click(ctx context.Context, loc domain.Locator) error {
	el, err := d.find(ctx, loc)
	if err != nil {
		return err
	}
	if _, err := el.Eval(`() => {
		this.click();
		this.dispatchEvent(new MouseEvent('click', {bubbles: true}));
	}`); err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	return nil
}

// SetValue writes value into an input/textarea (typed, replacing the current
// content), a select (by value), or any other element via a JS value write
// with input/change events.
func (d *Driver) SetValue(ctx context.Context, loc domain.Locator, value string) error {
	el, err := d.find(ctx, loc)
	if err != nil {
		return err
	}

	tagObj, err := el.Eval(`() => this.tagName.toLowerCase()`)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", loc, err)
	}

	switch tagObj.Value.String() {
	case "input", "textarea":
		if err := el.SelectAllText(); err != nil {
			d.log.Debug("select all text failed", "locator", loc.String(), "error", err)
		}
		if err := el.Input(value); err != nil {
			return fmt.Errorf("input into %s: %w", loc, err)
		}
		return nil
	case "select":
		return d.selectOption(el, loc, value)
	}

	if _, err := el.Eval(`(value) => {
		this.value = value;
		this.dispatchEvent(new Event('input', {bubbles: true}));
		this.dispatchEvent(new Event('change', {bubbles: true}));
	}`, value); err != nil {
		return fmt.Errorf("set value on %s: %w", loc, err)
	}
	return nil
}

// SelectOption selects a <select> option by value first, then by visible
// text.
func (d *Driver) SelectOption(ctx context.Context, loc domain.Locator, option string) error {
	el, err := d.find(ctx, loc)
	if err != nil {
		return err
	}
	return d.selectOption(el, loc, option)
}

func (d *Driver) selectOption(el *rod.Element, loc domain.Locator, option string) error {
	res, err := el.Eval(`(option) => {
		const opts = Array.from(this.options || []);
		let hit = opts.find(o => o.value === option);
		if (!hit) hit = opts.find(o => o.textContent.trim() === option.trim());
		if (!hit) return false;
		this.value = hit.value;
		this.dispatchEvent(new Event('change', {bubbles: true}));
		return true;
	}`, option)
	if err != nil {
		return fmt.Errorf("select on %s: %w", loc, err)
	}
	if !res.Value.Bool() {
		return fmt.Errorf("option %q not found in %s", option, loc)
	}
	return nil
}

// SetEditorValue replaces the content of a CodeMirror editor hosted at loc,
// falling back to the backing textarea.
func (d *Driver) SetEditorValue(ctx context.Context, loc domain.Locator, value string) error {
	el, err := d.find(ctx, loc)
	if err != nil {
		return err
	}

	res, err := el.Eval(`(value) => {
		const host = this;
		const candidates = [
			host,
			host.querySelector ? host.querySelector('.CodeMirror') : null,
			host.closest ? host.closest('.CodeMirror') : null,
		];
		for (const node of candidates) {
			if (node && node.CodeMirror) {
				node.CodeMirror.setValue(value);
				return true;
			}
		}
		const ta = host.querySelector ? host.querySelector('textarea') : null;
		if (ta) {
			ta.value = value;
			ta.dispatchEvent(new Event('input', {bubbles: true}));
			ta.dispatchEvent(new Event('change', {bubbles: true}));
			return true;
		}
		return false;
	}`, value)
	if err != nil {
		return fmt.Errorf("set editor value on %s: %w", loc, err)
	}
	if !res.Value.Bool() {
		return fmt.Errorf("no editor found at %s", loc)
	}
	return nil
}

// PressKey dispatches a keyboard key by its capture name.
func (d *Driver) PressKey(ctx context.Context, key string) error {
	var k input.Key
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "enter":
		k = input.Enter
	case "escape", "esc":
		k = input.Escape
	case "tab":
		k = input.Tab
	case "backspace":
		k = input.Backspace
	case "arrowdown", "arrow_down":
		k = input.ArrowDown
	case "arrowup", "arrow_up":
		k = input.ArrowUp
	case "space", " ":
		k = input.Space
	default:
		return fmt.Errorf("unsupported key: %s", key)
	}
	return d.page.Context(ctx).Keyboard.Press(k)
}

// Text reads the visible text (or value) of the element at loc.
func (d *Driver) Text(ctx context.Context, loc domain.Locator) (string, error) {
	el, err := d.find(ctx, loc)
	if err != nil {
		return "", err
	}
	res, err := el.Eval(`() => this.innerText || this.textContent || this.value || ""`)
	if err != nil {
		return "", fmt.Errorf("read text of %s: %w", loc, err)
	}
	return res.Value.String(), nil
}

// WaitVisible polls across frames until the element is present and visible.
func (d *Driver) WaitVisible(ctx context.Context, loc domain.Locator, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		el, err := d.lookup(ctx, loc)
		if err == nil {
			if vis, vErr := el.Visible(); vErr == nil && vis {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("element %s not visible after %s", loc, timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
}

// find waits for the element up to the driver's default timeout, searching
// the main page and nested iframes.
func (d *Driver) find(ctx context.Context, loc domain.Locator) (*rod.Element, error) {
	deadline := time.Now().Add(d.timeout)
	for {
		el, err := d.lookup(ctx, loc)
		if err == nil {
			return el, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("element %s not found after %s", loc, d.timeout)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
}

// lookup is a single non-waiting scan of the page and its frames.
func (d *Driver) lookup(ctx context.Context, loc domain.Locator) (*rod.Element, error) {
	return findInFrames(d.page.Context(ctx), loc, frameDepth)
}

func findInFrames(page *rod.Page, loc domain.Locator, depth int) (*rod.Element, error) {
	if el, err := probe(page, loc); err == nil {
		return el, nil
	}
	if depth == 0 {
		return nil, fmt.Errorf("element %s not found", loc)
	}

	frames, err := page.Elements("iframe")
	if err != nil {
		return nil, err
	}
	for _, frameEl := range frames {
		framePage, err := frameEl.Frame()
		if err != nil {
			continue
		}
		if el, err := findInFrames(framePage, loc, depth-1); err == nil {
			return el, nil
		}
	}
	return nil, fmt.Errorf("element %s not found", loc)
}

// probe checks for the element without waiting.
func probe(page *rod.Page, loc domain.Locator) (*rod.Element, error) {
	var (
		has bool
		el  *rod.Element
		err error
	)
	switch loc.By {
	case domain.ByXPath:
		has, el, err = page.HasX(loc.Value)
	case domain.ByID:
		has, el, err = page.Has("#" + loc.Value)
	default:
		has, el, err = page.Has(loc.Value)
	}
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, fmt.Errorf("element %s not found", loc)
	}
	return el, nil
}
