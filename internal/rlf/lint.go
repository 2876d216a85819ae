package rlf

import "go.uber.org/multierr"

// Lint evaluates template against every warning-producing path Substitute
// can take and combines them into a single error via multierr, per §4.5's
// "fallible evaluation producing EvalWarnings that lint passes must
// surface." Returns nil if template has no warnings against locale.
func Lint(template string, vars Vars, locale Locale) error {
	_, warnings := Substitute(template, vars, locale)
	if len(warnings) == 0 {
		return nil
	}
	errs := make([]error, len(warnings))
	for i, w := range warnings {
		errs[i] = w
	}
	return multierr.Combine(errs...)
}

// LintBothLocales runs Lint against both the source locale and the bracket
// test locale, so a phrase id translated only for LocaleEn (and therefore
// invisible when eyeballing rendered English text) still surfaces as a
// warning: the bracket locale's derived phrase table has exactly the same
// keys as LocaleEn, so any gap is a genuine missing-phrase-id bug, not a
// translation someone hasn't gotten to yet.
func LintBothLocales(template string, vars Vars) error {
	return multierr.Append(
		Lint(template, vars, LocaleEn),
		Lint(template, vars, LocaleBracketTest),
	)
}
