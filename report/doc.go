// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report drives the "Report this post" dialog.

# Steps

The dialog has two steps:

	report   → pick one or more policies, then Continue
	feedback → pick one feedback reason, then Submit (or Back)

A Wizard holds the draft and enforces the rules:

	w := report.New(postID, report.NewClient(baseURL, nil), notifier)
	w.Open()
	w.TogglePolicy("Spam")
	w.Continue()
	w.SelectFeedback("This post is old")
	err := w.Submit(ctx)

Continue with no policy, or Submit with no feedback, shows an error notice
and leaves the step alone. Submit never sends a request for an incomplete
draft.

# Submission

Submit posts one request:

	{"report_category": "Spam, Fraud or scam", "reason": "...", "postId": "..."}

report_category is the selected policies joined with ", " in the order
they were picked. Success shows a notice and closes the dialog. Any
failure (transport error or non-2xx status) shows a retry notice and
keeps the draft on the feedback step.

While a submission is in flight every other action returns ErrSubmitting.
There are no retries and no cancellation beyond the caller's context.

# Closing

Close schedules the draft reset ResetDelay later so a closing animation
does not flash the first step. The reset is a cancellable delayed action:
Open applies a pending reset immediately and Dispose cancels it. A
submission result that arrives after Close never touches the state; a
success still sends its notice. After Dispose every result is dropped.
*/
package report
