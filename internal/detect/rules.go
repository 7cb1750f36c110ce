package detect

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Component kind labels. These are user-facing and part of the JSON output.
const (
	KindLoginForm     = "Login Form (contains password field)"
	KindAuthContainer = "Auth Container (div-based)"
	KindPasswordInput = "Password Input Field"
	KindAuthForm      = "Authentication Form"
	KindAuthSection   = "Auth Section / Container"
	KindOAuthButton   = "OAuth / SSO Button"
	KindAuthLink      = "Auth Link / Button"
)

// rules lists the detection rules in evaluation order. The order is part of
// the contract: it fixes both display order and which of two overlapping
// matches survives deduplication.
var rules = []func(*goquery.Document, Config, *aggregator){
	passwordRule,
	formContentRule,
	containerRule,
	oauthPhraseRule,
	authLinkRule,
}

// passwordRule anchors on password inputs, the strongest auth signal. The
// emitted component is the enclosing form when there is one, else the
// nearest auth-flavored container, else the bare input.
func passwordRule(doc *goquery.Document, cfg Config, agg *aggregator) {
	doc.Find("input").Each(func(_ int, input *goquery.Selection) {
		if !strings.EqualFold(input.AttrOr("type", ""), "password") {
			return
		}
		if form := input.Closest("form"); form.Length() > 0 {
			agg.add(KindLoginForm, form, "Found <form> wrapping a password input")
			return
		}
		if container := closestAuthContainer(input, cfg.AuthKeywords); container != nil {
			agg.add(KindAuthContainer, container, "Password input inside container with auth attributes")
			return
		}
		agg.add(KindPasswordInput, input, "Standalone password input (no parent form detected)")
	})
}

// closestAuthContainer walks the input's ancestors and returns the nearest
// div/section/main whose attributes match the keyword set, or nil.
func closestAuthContainer(sel *goquery.Selection, keywords []string) *goquery.Selection {
	var found *goquery.Selection
	sel.ParentsFiltered("div, section, main").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if attrsMatch(p, keywords) {
			found = p
			return false
		}
		return true
	})
	return found
}

// formContentRule flags forms that look like auth forms, either by their own
// attributes or by the inputs they contain. Forms already emitted by the
// password rule collapse in deduplication.
func formContentRule(doc *goquery.Document, cfg Config, agg *aggregator) {
	placeholderKeywords := cfg.AuthKeywords
	if len(placeholderKeywords) > 10 {
		placeholderKeywords = placeholderKeywords[:10]
	}
	doc.Find("form").Each(func(_ int, form *goquery.Selection) {
		if attrsMatch(form, cfg.AuthKeywords) {
			agg.add(KindAuthForm, form, "Form with auth-related attributes (id/class/action)")
			return
		}
		hasAuth := false
		form.Find("input").Each(func(_ int, input *goquery.Selection) {
			name := strings.ToLower(input.AttrOr("name", ""))
			itype := strings.ToLower(input.AttrOr("type", ""))
			placeholder := strings.ToLower(input.AttrOr("placeholder", ""))
			if itype == "password" || itype == "email" {
				hasAuth = true
			}
			if containsAny(name, cfg.AuthInputNames) {
				hasAuth = true
			}
			if containsAny(placeholder, placeholderKeywords) {
				hasAuth = true
			}
		})
		if hasAuth {
			agg.add(KindAuthForm, form, "Form contains auth-related input fields")
		}
	})
}

// containerRule flags sectioning elements with auth-flavored attributes that
// actually hold input fields, catching div-based login UIs without a form.
func containerRule(doc *goquery.Document, cfg Config, agg *aggregator) {
	for _, tag := range []string{"div", "section", "main", "aside"} {
		doc.Find(tag).Each(func(_ int, elem *goquery.Selection) {
			if !attrsMatch(elem, cfg.ContainerKeywords) {
				return
			}
			if elem.Find("input").Length() == 0 {
				return
			}
			agg.add(KindAuthSection, elem, fmt.Sprintf("<%s> with auth-related class/id + input fields", tag))
		})
	}
}

// oauthPhraseRule matches social/SSO buttons by their visible text, e.g.
// "Sign in with Google" or "Continue using GitHub".
func oauthPhraseRule(doc *goquery.Document, cfg Config, agg *aggregator) {
	doc.Find("a, button").Each(func(_ int, btn *goquery.Selection) {
		text := strings.TrimSpace(btn.Text())
		if cfg.OAuthTextPattern.MatchString(text) {
			agg.add(KindOAuthButton, btn, "Social or SSO login button")
		}
	})
}

// authLinkRule matches links whose href points at an auth endpoint and whose
// visible text reads like a login action. Both signals are required.
func authLinkRule(doc *goquery.Document, cfg Config, agg *aggregator) {
	doc.Find("a, button").Each(func(_ int, btn *goquery.Selection) {
		href := strings.ToLower(btn.AttrOr("href", ""))
		if !containsAny(href, cfg.LinkHrefHints) {
			return
		}
		text := strings.ToLower(strings.TrimSpace(btn.Text()))
		if containsAny(text, cfg.LinkTextHints) {
			agg.add(KindAuthLink, btn, "Link pointing to auth endpoint")
		}
	})
}
