package server

import "html/template"

var calculatorPage = template.Must(template.New("calculator").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Loan Payment Calculator</title>
</head>
<body>
<section id="calculator">
  <h2>Loan Payment Calculator</h2>
  <form method="post" action="/calculator" novalidate>
    <label>Loan Amount ($)
      <input type="number" name="amount" value="{{.Inputs.AmountText}}" aria-label="Loan amount" required>
    </label>
    <label>Annual Interest Rate (%)
      <input type="number" name="rate" value="{{.Inputs.RatePercentText}}" aria-label="Annual interest rate" required>
    </label>
    <label>Term (years)
      <input type="number" name="term" value="{{.Inputs.TermYearsText}}" aria-label="Term in years" required>
    </label>
    <button type="submit" aria-label="Calculate payment">Calculate</button>
  </form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  {{if .Result}}<p class="result">{{.Result}}</p>{{end}}
</section>
</body>
</html>
`))
