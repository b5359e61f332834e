// Package help holds the built-in quick start guide.
package help

const QuickstartYAML = `# product-page-parser Quick Start

sections:
  meta: "Title, description, keywords, Open Graph and language from <head>"
  product: "Id, images, tags, price, properties and description of .product"
  suggested: "Offers listed under .suggested"
  reviews: "Cards listed under .reviews"

output:
  single_input: "Result printed to stdout"
  several_inputs: "Envelope with status, per-input results and stats"
  output_dir: "One file per input plus summary-<date>.<format>"

commands:
  parse_file: |
    product-page-parser parse page.html

  parse_stdin: |
    curl -s https://shop.example/item/14 | product-page-parser parse -

  parse_directory: |
    product-page-parser parse --workers 8 --output-dir results pages/

  select_sections: |
    product-page-parser parse --sections product,reviews page.html

  filter_fields: |
    product-page-parser parse --fields product --format yaml page.html

  language_fallback: |
    product-page-parser parse --detect-language --languages ru,en page.html

  check_markup: |
    product-page-parser check pages/

config_file: |
  # product-page-parser.yaml
  workers: 4
  format: json
  sections: all
  output_dir: results
  detect_language: true
  languages: [ru, en]

exit_codes:
  0: "All inputs parsed"
  1: "Some inputs failed, bad usage, or check found non-conforming pages"
  2: "All inputs failed or setup error"

tips:
  - "Price fields are absent when the .price block does not match the expected <span> layout; run check to see which pages are affected"
  - "Currency is UNKNOWN for symbols other than ₽, $ and €"
  - "--fields accepts meta, product, suggested and reviews"
`
