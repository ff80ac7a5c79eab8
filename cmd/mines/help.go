package main

const helpText = `Open a cell by typing its row and column, e.g. "3,7".
Put an "f" in front to place or remove a flag, e.g. "f3,7".
Opening a number that already has all its mines flagged opens
every unflagged cell around it.

  help, h, ?         show this help
  quit, exit, q      leave the game
`
