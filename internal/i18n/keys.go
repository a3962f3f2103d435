package i18n

// Key names a localized string by its dotted path.
type Key string

const (
	KeyMetaTitle Key = "meta.title"

	KeyHeaderTitle     Key = "header.title"
	KeyHeaderRegion    Key = "header.region"
	KeyHeaderUpdated   Key = "header.updated"
	KeyHeaderRefresh   Key = "header.refresh"
	KeyHeaderFeedStamp Key = "header.feedStamp"

	KeySectionGroup    Key = "section.group"
	KeySectionOverview Key = "section.overview"

	KeyTabActual    Key = "tabs.actual"
	KeyTabPredicted Key = "tabs.predicted"
	KeyTabToday     Key = "tabs.today"
	KeyTabTomorrow  Key = "tabs.tomorrow"

	KeyStatusYes         Key = "status.yes"
	KeyStatusNo          Key = "status.no"
	KeyStatusFirst       Key = "status.first"
	KeyStatusSecond      Key = "status.second"
	KeyStatusMaybe       Key = "status.maybe"
	KeyStatusMaybeFirst  Key = "status.mfirst"
	KeyStatusMaybeSecond Key = "status.msecond"

	KeyErrorFetchFailed Key = "error.fetchFailed"
	KeyFooterSource     Key = "footer.source"

	KeyTimeNever      Key = "time.never"
	KeyTimeJustNow    Key = "time.justNow"
	KeyTimeMinutesAgo Key = "time.minutesAgo" // template, use Format

	KeyStateLoading Key = "state.loading"
	KeyStateNoData  Key = "state.noData"

	KeyHelpTitle         Key = "help.title"
	KeyHelpNavigation    Key = "help.navigation"
	KeyHelpView          Key = "help.view"
	KeyHelpGeneral       Key = "help.general"
	KeyHelpCycleFocus    Key = "help.cycleFocus"
	KeyHelpFocusGroup    Key = "help.focusGroup"
	KeyHelpFocusOverview Key = "help.focusOverview"
	KeyHelpScroll        Key = "help.scroll"
	KeyHelpActual        Key = "help.actual"
	KeyHelpPredicted     Key = "help.predicted"
	KeyHelpToday         Key = "help.today"
	KeyHelpTomorrow      Key = "help.tomorrow"
	KeyHelpLanguage      Key = "help.language"
	KeyHelpTheme         Key = "help.theme"
	KeyHelpRefresh       Key = "help.refresh"
	KeyHelpHelp          Key = "help.help"
	KeyHelpQuit          Key = "help.quit"
)

var knownKeys = []Key{
	KeyMetaTitle,
	KeyHeaderTitle, KeyHeaderRegion, KeyHeaderUpdated, KeyHeaderRefresh, KeyHeaderFeedStamp,
	KeySectionGroup, KeySectionOverview,
	KeyTabActual, KeyTabPredicted, KeyTabToday, KeyTabTomorrow,
	KeyStatusYes, KeyStatusNo, KeyStatusFirst, KeyStatusSecond,
	KeyStatusMaybe, KeyStatusMaybeFirst, KeyStatusMaybeSecond,
	KeyErrorFetchFailed, KeyFooterSource,
	KeyTimeNever, KeyTimeJustNow, KeyTimeMinutesAgo,
	KeyStateLoading, KeyStateNoData,
	KeyHelpTitle, KeyHelpNavigation, KeyHelpView, KeyHelpGeneral,
	KeyHelpCycleFocus, KeyHelpFocusGroup, KeyHelpFocusOverview, KeyHelpScroll,
	KeyHelpActual, KeyHelpPredicted, KeyHelpToday, KeyHelpTomorrow,
	KeyHelpLanguage, KeyHelpTheme, KeyHelpRefresh, KeyHelpHelp, KeyHelpQuit,
}

// Keys returns every key the application looks up statically.
func Keys() []Key {
	out := make([]Key, len(knownKeys))
	copy(out, knownKeys)
	return out
}

// StatusKey returns the label key for a status value such as "mfirst".
// Unknown statuses produce a key that resolves to itself.
func StatusKey(status string) Key {
	return Key("status." + status)
}
