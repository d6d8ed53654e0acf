package cli

type ReportOptions = reportOptions

var RunReport = runReport
